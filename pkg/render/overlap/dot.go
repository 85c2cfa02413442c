// Package overlap renders a document's span overlap structure as a graph.
//
// Each span becomes a node and each pair of strictly overlapping spans an
// edge, so tangled annotations that are hard to read in the flat diagrams
// can be inspected structurally. This is a debugging aid for annotation
// tooling, not part of the display pipeline.
package overlap

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/spanmark/spanmark/pkg/markup"
	"github.com/spanmark/spanmark/pkg/render/palette"
)

// Options configures overlap graph generation.
type Options struct {
	// Detailed includes the assigned level and the covered text excerpt in
	// node labels. When false, only the category and extent are shown.
	Detailed bool
}

// excerptLen caps the text excerpt embedded in detailed node labels.
const excerptLen = 24

// ToDOT converts the document's spans and computed layout into Graphviz DOT.
// Spans of the same group share a cluster; edges connect spans that overlap
// on at least one rune. Render the result with [RenderSVG] or [RenderPNG].
func ToDOT(m *markup.Markup, opts Options) string {
	pal := palette.New()

	var buf bytes.Buffer
	buf.WriteString("graph overlaps {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	id := 0
	for gi, g := range m.Groups() {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", gi)
		fmt.Fprintf(&buf, "    label=\"[%d, %d)\";\n", g.Start, g.Stop)
		fmt.Fprintf(&buf, "    style=dashed;\n")

		first := id
		for _, row := range g.Rows {
			label := fmtLabel(m, row.Type, row.Start, row.Stop, row.Level, opts.Detailed)
			fmt.Fprintf(&buf, "    n%d [label=%q, fillcolor=%q];\n",
				id, label, pal.Get(row.Type).Background)
			id++
		}

		for i := first; i < id; i++ {
			for j := i + 1; j < id; j++ {
				a, b := g.Rows[i-first], g.Rows[j-first]
				if a.Start < b.Stop && b.Start < a.Stop {
					fmt.Fprintf(&buf, "    n%d -- n%d;\n", i, j)
				}
			}
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(m *markup.Markup, typ string, start, stop, level int, detailed bool) string {
	name := typ
	if name == "" {
		name = "(untyped)"
	}
	label := fmt.Sprintf("%s [%d, %d)", name, start, stop)
	if !detailed {
		return label
	}

	excerpt := m.Slice(start, stop)
	if stop-start > excerptLen {
		excerpt = m.Slice(start, start+excerptLen) + "…"
	}
	return fmt.Sprintf("%s\nlevel %d\n%q", label, level, excerpt)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
