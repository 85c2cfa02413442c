// Package grid builds the per-line character matrix shared by the ascii and
// ansi renderers.
//
// For every wrapped fold of a document it clips the layout groups to the
// fold's rune range, paints dash rows for each surviving row slice, and
// overlays category labels where a row truly begins. Dashes for all rows are
// painted before any label, so labels always sit on top and are never
// clipped by a later dash pass.
package grid

import (
	"iter"

	"github.com/spanmark/spanmark/pkg/layout"
	"github.com/spanmark/spanmark/pkg/markup"
	"github.com/spanmark/spanmark/pkg/wrap"
)

// Cell is a single annotation-matrix character. Type names the category the
// cell was painted for, so colorizing renderers can style runs; it is empty
// for blank cells.
type Cell struct {
	Ch   rune
	Type string
}

// Line is one wrapped content line plus its annotation rows.
// Rows is indexed [level][column] and is empty when no span touches the
// fold; levels without a surviving row are present as all-blank rows.
type Line struct {
	Fold wrap.Fold
	Rows [][]Cell
}

// Build yields one [Line] per wrapped fold of the document. The sequence is
// finite and fresh on every call; stopping early is safe.
func Build(m *markup.Markup, width int) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		groups := m.Groups()
		index := 0
		for fold := range wrap.Lines(m.Text(), width) {
			line := Line{Fold: fold}
			var rows []rowSlice
			rows, index = clip(groups, index, fold)
			if len(rows) > 0 {
				line.Rows = paint(rows, fold)
			}
			if !yield(line) {
				return
			}
		}
	}
}

// rowSlice is a layout row clipped to one fold. The embedded Row keeps the
// true extent; start and stop carry the clipped one.
type rowSlice struct {
	layout.Row
	start, stop int
}

// clip gathers every row intersecting the fold, advancing the group index
// past groups the fold fully consumes. Groups are ordered by start, so the
// scan stops at the first group beginning at or after the fold's end.
func clip(groups []layout.Group, index int, fold wrap.Fold) ([]rowSlice, int) {
	var out []rowSlice
	for index < len(groups) {
		g := groups[index]
		if g.Start >= fold.Stop {
			break
		}
		for _, r := range g.Rows {
			start, stop := max(r.Start, fold.Start), min(r.Stop, fold.Stop)
			if start >= stop {
				continue
			}
			out = append(out, rowSlice{Row: r, start: start, stop: stop})
		}
		if g.Stop > fold.Stop {
			break // group continues on the next fold
		}
		index++
	}
	return out, index
}

func paint(rows []rowSlice, fold wrap.Fold) [][]Cell {
	height := 0
	for _, r := range rows {
		if r.Level+1 > height {
			height = r.Level + 1
		}
	}

	cols := fold.Stop - fold.Start
	matrix := make([][]Cell, height)
	for i := range matrix {
		matrix[i] = make([]Cell, cols)
		for j := range matrix[i] {
			matrix[i][j] = Cell{Ch: ' '}
		}
	}

	for _, r := range rows {
		for x := r.start; x < r.stop; x++ {
			matrix[r.Level][x-fold.Start] = Cell{Ch: '-', Type: r.Type}
		}
	}

	for _, r := range rows {
		if r.Type == "" || r.start != r.Row.Start {
			continue // label already drawn on an earlier fold, or untyped
		}
		label := []rune(r.Type)
		n := min(len(label), r.stop-r.start)
		for i := range n {
			matrix[r.Level][r.start-fold.Start+i] = Cell{Ch: label[i], Type: r.Type}
		}
	}
	return matrix
}
