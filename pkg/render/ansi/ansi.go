// Package ansi renders markup documents as colored terminal diagrams.
//
// Output has the same shape as the ascii renderer (wrapped text lines
// interleaved with annotation rows) but dash runs and labels are colored
// per category through lipgloss. The actual escape sequences depend on the
// terminal's color profile; on a dumb terminal the output degrades to the
// plain ascii diagram.
package ansi

import (
	"bytes"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spanmark/spanmark/pkg/markup"
	"github.com/spanmark/spanmark/pkg/render/internal/grid"
	"github.com/spanmark/spanmark/pkg/render/palette"
)

// Option configures the terminal renderer.
type Option func(*renderer)

// WithPalette supplies a prepared palette, typically carrying per-category
// pins from configuration. Without it a fresh cycling palette is used.
func WithPalette(p *palette.Palette) Option {
	return func(r *renderer) { r.palette = p }
}

// WithoutColor disables styling entirely; the output is then byte-identical
// to the ascii renderer's.
func WithoutColor() Option {
	return func(r *renderer) { r.color = false }
}

type renderer struct {
	palette *palette.Palette
	color   bool
}

// Lines yields the rendered output line by line. The sequence is finite,
// fresh on every call, and safe to abandon early. width must be positive.
func Lines(m *markup.Markup, width int, opts ...Option) iter.Seq[string] {
	r := renderer{palette: palette.New(), color: true}
	for _, opt := range opts {
		opt(&r)
	}

	return func(yield func(string) bool) {
		for line := range grid.Build(m, width) {
			if !yield(strings.ReplaceAll(line.Fold.Text, "\t", " ")) {
				return
			}
			for _, row := range line.Rows {
				if !yield(r.rowString(row)) {
					return
				}
			}
		}
	}
}

// Render draws the whole document at once, lines joined with newlines.
func Render(m *markup.Markup, width int, opts ...Option) []byte {
	var buf bytes.Buffer
	for line := range Lines(m, width, opts...) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// rowString joins an annotation row into a string, styling each maximal run
// of same-category cells with that category's color.
func (r *renderer) rowString(row []grid.Cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j].Type == row[i].Type {
			j++
		}
		run := make([]rune, 0, j-i)
		for _, c := range row[i:j] {
			run = append(run, c.Ch)
		}
		b.WriteString(r.styleRun(row[i].Type, string(run)))
		i = j
	}
	return b.String()
}

func (r *renderer) styleRun(category, s string) string {
	if !r.color || strings.TrimSpace(s) == "" {
		return s
	}
	c := r.palette.Get(category)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Term)).Render(s)
}
