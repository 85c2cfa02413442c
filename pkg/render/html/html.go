// Package html renders markup documents as self-contained HTML fragments.
//
// Two renderers are provided. [RenderBox] wraps each span's text in a
// rounded, filled inline box; it reads the sorted spans directly and is the
// right choice when spans do not overlap. [RenderLine] draws one underline
// per layout level beneath the text of each overlap group, so nested and
// overlapping spans stay distinguishable.
//
// Both emit a single <div> with inline styles and no external dependencies,
// suitable for embedding in notebooks or reports.
package html

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/spanmark/spanmark/pkg/layout"
	"github.com/spanmark/spanmark/pkg/markup"
	"github.com/spanmark/spanmark/pkg/render/palette"
)

// Option configures the HTML renderers.
type Option func(*renderer)

// WithLabels draws category labels: a superscript inside each box for
// [RenderBox], a small stacked label block after each group for
// [RenderLine].
func WithLabels() Option {
	return func(r *renderer) { r.labels = true }
}

// WithoutColor replaces per-category colors with a neutral yellow shade.
func WithoutColor() Option {
	return func(r *renderer) { r.color = false }
}

// WithPalette supplies a prepared palette, typically carrying per-category
// pins from configuration. Without it a fresh cycling palette is used.
func WithPalette(p *palette.Palette) Option {
	return func(r *renderer) { r.palette = p }
}

type renderer struct {
	labels  bool
	color   bool
	palette *palette.Palette
}

func newRenderer(opts ...Option) renderer {
	r := renderer{color: true, palette: palette.New()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *renderer) colorFor(category string) palette.Color {
	if !r.color {
		return palette.Yellow
	}
	return r.palette.Get(category)
}

// RenderBox renders each span as a rounded inline box around its text.
func RenderBox(m *markup.Markup, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	buf.WriteString(`<div style="white-space: pre-wrap">`)
	prev := 0
	for _, s := range m.Spans() {
		if s.Start > prev {
			buf.WriteString(escape(m.Slice(prev, s.Start)))
		}
		c := r.colorFor(s.Type)
		fmt.Fprintf(&buf,
			`<span style="padding: 0.15em; border-radius: 0.25em; border: 1px solid %s; background: %s">`,
			c.Darker, c.Background)
		buf.WriteString(escape(m.Slice(s.Start, s.Stop)))
		if r.labels && s.Type != "" {
			fmt.Fprintf(&buf, `<sup style="font-size: 0.7em; color: %s;">%s</sup>`,
				c.EvenDarker, escape(s.Type))
		}
		buf.WriteString(`</span>`)
		prev = max(prev, s.Stop)
	}
	buf.WriteString(escape(m.Slice(prev, m.RuneLen())))
	buf.WriteString(`</div>`)
	return buf.Bytes()
}

// RenderLine underlines each overlap group once per occupied level, nesting
// the underline spans so deeper levels sit lower on the line.
func RenderLine(m *markup.Markup, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	buf.WriteString(`<div style="line-height: 1.6em; white-space: pre-wrap">`)
	prev := 0
	for _, g := range m.Groups() {
		buf.WriteString(escape(m.Slice(prev, g.Start)))
		if r.labels {
			r.labeledGroup(&buf, m, g)
		} else {
			r.underlinedGroup(&buf, m, g)
		}
		prev = g.Stop
	}
	buf.WriteString(escape(m.Slice(prev, m.RuneLen())))
	buf.WriteString(`</div>`)
	return buf.Bytes()
}

// underlinedGroup stacks one underline per row, with the underline's
// distance from the text growing with the row's level.
func (r *renderer) underlinedGroup(buf *bytes.Buffer, m *markup.Markup, g layout.Group) {
	for _, row := range g.Rows {
		fmt.Fprintf(buf, `<span style="border-bottom: 2px solid %s; padding-bottom: %dpx">`,
			r.colorFor(row.Type).Line, 1+row.Level*3)
	}
	buf.WriteString(escape(m.Slice(g.Start, g.Stop)))
	for range g.Rows {
		buf.WriteString(`</span>`)
	}
}

// labeledGroup draws a single underline and lists the group's category
// labels in a small block right after the text. Whitespace-only groups are
// passed through unmarked.
func (r *renderer) labeledGroup(buf *bytes.Buffer, m *markup.Markup, g layout.Group) {
	text := m.Slice(g.Start, g.Stop)
	if strings.TrimSpace(text) == "" {
		buf.WriteString(escape(text))
		return
	}

	fmt.Fprintf(buf, `<span style="border-bottom: 2px solid %s; padding-bottom: 1px">`,
		palette.Blue.Line)
	buf.WriteString(escape(text))
	buf.WriteString(`</span>`)

	var types []string
	for _, row := range g.Rows {
		if row.Type != "" {
			types = append(types, row.Type)
		}
	}
	if len(types) == 0 {
		return
	}

	buf.WriteString(`<span style="display: inline-block; margin-left: 1px; font-size: 7px;">`)
	if len(types) == 1 {
		buf.WriteString(escape(types[0]))
	} else {
		for _, t := range types {
			fmt.Fprintf(buf, `<span style="display: block; height: 7px;">%s</span>`, escape(t))
		}
	}
	buf.WriteString(`</span>`)
}

func escape(s string) string { return stdhtml.EscapeString(s) }
