// Package layout partitions possibly-overlapping spans into display rows.
//
// Given spans in canonical order, [Compute] assigns each span the smallest
// display level not occupied by a still-open span and gathers runs of
// transitively overlapping spans into groups. Renderers clip these groups
// against wrapped line boundaries; the engine itself never splits a span.
package layout

import (
	"slices"

	"github.com/spanmark/spanmark/pkg/span"
)

// Row is a single span's placement within a group: the span's own extent at
// its assigned level.
type Row struct {
	Level int    // display row index, 0 is closest to the text
	Start int    // first rune covered, inclusive
	Stop  int    // first rune past the row, exclusive
	Type  string // category label carried over from the span
}

// Group is a maximal run of transitively overlapping spans. Its extent
// [Start, Stop) is the union of its rows' extents. Groups never overlap each
// other and are ordered by Start.
type Group struct {
	Start int
	Stop  int
	Rows  []Row
}

// Height returns the number of display rows the group needs: one more than
// the highest assigned level.
func (g Group) Height() int {
	h := 0
	for _, r := range g.Rows {
		if r.Level+1 > h {
			h = r.Level + 1
		}
	}
	return h
}

// Compute assigns levels and groups spans in a single pass.
//
// An explicit active set holds every span whose stop has not passed the
// current span's start. Each new span takes the smallest level unused by the
// active set; ties always resolve to the smallest free integer, which keeps
// the assignment deterministic and uses the minimum number of rows within a
// group (greedy interval coloring). Spans that merely touch are dropped from
// the active set, so they may share a level, and touching alone never merges
// two groups.
//
// Spans must already be sorted per [span.Compare]; Compute does not check.
// An empty input yields nil.
func Compute(spans []span.Span) []Group {
	if len(spans) == 0 {
		return nil
	}

	var groups []Group
	var current Group
	var active []Row

	for i, s := range spans {
		active = slices.DeleteFunc(active, func(r Row) bool { return r.Stop <= s.Start })
		row := Row{Level: freeLevel(active), Start: s.Start, Stop: s.Stop, Type: s.Type}
		active = append(active, row)

		if i == 0 || s.Start >= current.Stop {
			if i > 0 {
				groups = append(groups, current)
			}
			current = Group{Start: s.Start, Stop: s.Stop, Rows: []Row{row}}
			continue
		}
		current.Rows = append(current.Rows, row)
		if s.Stop > current.Stop {
			current.Stop = s.Stop
		}
	}
	return append(groups, current)
}

// freeLevel returns the smallest non-negative level not taken by the active
// set. The active set is tiny in practice, so a linear probe beats any
// fancier structure.
func freeLevel(active []Row) int {
	for level := 0; ; level++ {
		if !levelTaken(active, level) {
			return level
		}
	}
}

func levelTaken(active []Row, level int) bool {
	for _, r := range active {
		if r.Level == level {
			return true
		}
	}
	return false
}
