// Package ascii renders markup documents as fixed-width text diagrams.
//
// The text is wrapped to the requested width and each wrapped line is
// followed by its annotation rows: one row per occupied level, dashes
// marking span extents, with the category label overlaid where a span
// begins. A span crossing a wrap boundary reappears, clipped, under every
// line it touches; its label is drawn only once.
//
//	ab cd
//	X-
//	 Y--
package ascii

import (
	"bytes"
	"iter"
	"strings"

	"github.com/spanmark/spanmark/pkg/markup"
	"github.com/spanmark/spanmark/pkg/render/internal/grid"
)

// Lines yields the rendered output line by line: each wrapped content line
// followed by zero or more annotation rows. The sequence is finite, fresh on
// every call, and safe to abandon early. width must be positive.
func Lines(m *markup.Markup, width int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range grid.Build(m, width) {
			// Tabs render as single spaces; offsets already measured them
			// as one column each.
			if !yield(strings.ReplaceAll(line.Fold.Text, "\t", " ")) {
				return
			}
			for _, row := range line.Rows {
				if !yield(cellString(row)) {
					return
				}
			}
		}
	}
}

// Render draws the whole document at once, lines joined with newlines.
func Render(m *markup.Markup, width int) []byte {
	var buf bytes.Buffer
	for line := range Lines(m, width) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func cellString(row []grid.Cell) string {
	runes := make([]rune, len(row))
	for i, c := range row {
		runes[i] = c.Ch
	}
	return string(runes)
}
