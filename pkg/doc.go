// Package pkg provides the core libraries for rendering annotated text.
//
// # Overview
//
// Spanmark draws texts annotated with possibly-overlapping labeled spans, the
// kind of data produced by NER pipelines, syntax analyzers, and manual
// annotation tools. The pkg directory is organized into four areas:
//
//  1. [span] and [layout] - Domain logic (spans, overlap resolution)
//  2. [wrap] and [markup] - Text wrapping and the document type
//  3. [render] - Output backends (ascii, ansi, html, json, graphviz)
//  4. [render/palette] - Deterministic category coloring
//
// # Architecture
//
// The typical data flow:
//
//	JSON/TOML document
//	         ↓
//	    [markup] package (validate, sort, compute layout)
//	         ↓
//	    [layout] package (levels + overlap groups)
//	         ↓
//	    [render] backends (wrap text, clip groups, draw)
//	         ↓
//	    terminal / HTML / JSON / DOT output
//
// # Quick Start
//
// Build a document and render it as a text diagram:
//
//	import (
//	    "github.com/spanmark/spanmark/pkg/markup"
//	    "github.com/spanmark/spanmark/pkg/render/ascii"
//	    "github.com/spanmark/spanmark/pkg/span"
//	)
//
//	m, err := markup.New("ab cd", []span.Span{
//	    {Start: 0, Stop: 2, Type: "X"},
//	    {Start: 1, Stop: 4, Type: "Y"},
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(ascii.Render(m, 70))
//
// which prints:
//
//	ab cd
//	X-
//	 Y--
//
// # Main Packages
//
// [span] - The labeled half-open interval [Start, Stop) over rune offsets,
// with the canonical order every other package relies on.
//
// [layout] - Greedy level assignment and grouping. Overlapping spans stack
// on separate rows; runs of transitively overlapping spans form groups that
// renderers clip against wrapped lines.
//
// [wrap] - Lossless line wrapping. Nothing is collapsed or trimmed, so fold
// offsets stay aligned with span offsets.
//
// [markup] - The immutable document type plus JSON and TOML codecs.
//
// [render/ascii], [render/ansi] - Fixed-width diagrams, plain or colored.
//
// [render/html] - Inline-styled HTML fragments: boxes or underlines.
//
// [render/sink] - JSON export of spans and resolved layout.
//
// [render/overlap] - Graphviz views of the overlap structure.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//
// [span]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/span
// [layout]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/layout
// [wrap]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/wrap
// [markup]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/markup
// [render]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/render
// [render/palette]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/render/palette
// [render/ascii]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/render/ascii
// [render/ansi]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/render/ansi
// [render/html]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/render/html
// [render/sink]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/render/sink
// [render/overlap]: https://pkg.go.dev/github.com/spanmark/spanmark/pkg/render/overlap
package pkg
