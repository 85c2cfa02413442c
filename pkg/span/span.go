// Package span defines the labeled half-open interval that markup documents
// are built from, together with the total order used for deterministic layout.
//
// Offsets are rune positions into the annotated text, not byte positions, so
// spans stay stable across multi-byte characters.
package span

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidRange is returned by [New] when start >= stop. Zero-length
	// and inverted spans are rejected outright, never clamped.
	ErrInvalidRange = errors.New("span start must be less than stop")

	// ErrNonIntegerOffset is returned by document decoders when an input
	// carries fractional offsets. Offsets are rune positions and must be
	// whole numbers.
	ErrNonIntegerOffset = errors.New("span offsets must be whole numbers")
)

// Span is a labeled half-open interval [Start, Stop) over a text.
// An empty Type means the span carries no category.
type Span struct {
	Start int    // first rune covered, inclusive
	Stop  int    // first rune past the span, exclusive
	Type  string // category label; empty means untyped
}

// New validates and constructs a span.
// Returns ErrInvalidRange when start >= stop.
func New(start, stop int, typ string) (Span, error) {
	if start >= stop {
		return Span{}, fmt.Errorf("%w: got [%d, %d)", ErrInvalidRange, start, stop)
	}
	return Span{Start: start, Stop: stop, Type: typ}, nil
}

// Len returns the number of runes the span covers.
func (s Span) Len() int { return s.Stop - s.Start }

// Overlaps reports whether s and other share at least one rune.
// Spans that merely touch (s.Stop == other.Start) do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.Stop && other.Start < s.Stop
}

// String renders the span for logs and error messages, e.g. "[3, 10) PER".
func (s Span) String() string {
	if s.Type == "" {
		return fmt.Sprintf("[%d, %d)", s.Start, s.Stop)
	}
	return fmt.Sprintf("[%d, %d) %s", s.Start, s.Stop, s.Type)
}

// Compare implements the canonical span order: Start ascending, then Stop
// ascending, then Type ascending. The empty type sorts before any named type
// (which lexicographic comparison gives for free). Spans equal on all three
// fields compare as 0, making this a strict weak ordering suitable for
// slices.SortFunc and slices.IsSortedFunc.
func Compare(a, b Span) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Stop, b.Stop); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

// Sort sorts spans in place into the canonical order defined by [Compare].
// Sorting an already-sorted slice is a no-op.
func Sort(spans []Span) { slices.SortFunc(spans, Compare) }
