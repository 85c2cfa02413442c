// Package wrap splits text into fixed-width display lines without losing
// whitespace or shifting offsets.
//
// Unlike typical word wrappers, nothing is collapsed, trimmed, or expanded:
// concatenating all fold contents reproduces the original text exactly, with
// every line break represented by a single space. This keeps fold offsets
// aligned with span offsets over the original text.
package wrap

import (
	"iter"
	"unicode"
)

// DefaultWidth is the conventional display width used when a caller gives
// none.
const DefaultWidth = 70

// Fold is one wrapped display line: the rune range [Start, Stop) it covers
// in the original text and that range's content. A newline removed at the
// end of a line is carried as a single trailing space, so fold ranges tile
// the whole text contiguously.
type Fold struct {
	Start int
	Stop  int
	Text  string
}

// Lines wraps text to width columns and yields folds in order. Every call
// returns a fresh sequence; draining it has no side effects and stopping
// early is always safe.
//
// Original line breaks split first; each line is then packed greedily at
// boundaries between whitespace and non-whitespace runs, and any single run
// longer than width is split mid-run. Tabs count as a single column; they
// are not expanded here, so offsets stay accurate against the original text.
// width must be positive.
func Lines(text string, width int) iter.Seq[Fold] {
	return func(yield func(Fold) bool) {
		runes := []rune(text)
		start := 0
		for {
			end := start
			for end < len(runes) && runes[end] != '\n' {
				end++
			}
			line := runes[start:end]
			if end < len(runes) {
				// Replace the removed '\n' with a virtual trailing space so
				// the fold ranges stay contiguous.
				line = append(append(make([]rune, 0, len(line)+1), line...), ' ')
			}
			if !foldLine(line, start, width, yield) {
				return
			}
			if end == len(runes) {
				return
			}
			start = end + 1
		}
	}
}

// foldLine packs one original line (virtual trailing space included) into
// folds of at most width runes and yields them.
func foldLine(line []rune, offset, width int, yield func(Fold) bool) bool {
	pos := 0
	for pos < len(line) {
		stop := foldStop(line, pos, width)
		f := Fold{Start: offset + pos, Stop: offset + stop, Text: string(line[pos:stop])}
		if !yield(f) {
			return false
		}
		pos = stop
	}
	return true
}

// foldStop returns where the fold starting at pos should end: after the last
// whole run that fits, or at the hard width limit when even the first run is
// too wide to fit on a line of its own.
func foldStop(line []rune, pos, width int) int {
	limit := pos + width
	if limit >= len(line) {
		return len(line)
	}
	stop := pos
	for stop < limit {
		next := runEnd(line, stop)
		if next > limit {
			break
		}
		stop = next
	}
	if stop == pos {
		return limit
	}
	return stop
}

// runEnd returns the end of the maximal whitespace or non-whitespace run
// starting at pos.
func runEnd(line []rune, pos int) int {
	space := unicode.IsSpace(line[pos])
	for pos < len(line) && unicode.IsSpace(line[pos]) == space {
		pos++
	}
	return pos
}
