// Package render groups the output backends for markup documents.
//
// # Overview
//
// Every renderer consumes an immutable [markup.Markup] (the text, its
// sorted spans, and the overlap layout computed at construction) and emits
// a different surface:
//
//   - [ascii]: fixed-width text diagrams for terminals and logs
//   - [ansi]: the same diagrams with per-category lipgloss coloring
//   - [html]: inline-styled HTML fragments (boxes or underlines)
//   - [sink]: machine-readable JSON export of spans and layout groups
//   - [overlap]: Graphviz views of the span overlap structure (debugging)
//
// Category colors come from [palette], a deterministic first-seen-order
// assignment with explicit pins, so every backend colors a given document
// the same way.
//
// [ascii]: github.com/spanmark/spanmark/pkg/render/ascii
// [ansi]: github.com/spanmark/spanmark/pkg/render/ansi
// [html]: github.com/spanmark/spanmark/pkg/render/html
// [sink]: github.com/spanmark/spanmark/pkg/render/sink
// [overlap]: github.com/spanmark/spanmark/pkg/render/overlap
// [palette]: github.com/spanmark/spanmark/pkg/render/palette
// [markup.Markup]: github.com/spanmark/spanmark/pkg/markup
package render
