// Package markup ties a text together with its sorted spans and the layout
// groups derived from them.
//
// A [Markup] is validated and fully computed at construction: spans are
// sorted into canonical order, checked against the text bounds, and the
// overlap layout is resolved once. After that the value is immutable, so it
// is safe to share one document across any number of renderers or
// goroutines.
package markup

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spanmark/spanmark/pkg/layout"
	"github.com/spanmark/spanmark/pkg/span"
)

// ErrSpanOutOfRange is returned by [New] when a span starts before the text
// or extends past its end. Out-of-range spans are rejected at construction,
// never clamped.
var ErrSpanOutOfRange = errors.New("span out of text range")

// Markup is an immutable annotated document.
type Markup struct {
	text   string
	runes  []rune
	spans  []span.Span
	groups []layout.Group
}

// New builds a document from a text and its spans.
//
// Spans may arrive in any order; they are cloned and sorted per
// [span.Compare]. Construction fails fast with [span.ErrInvalidRange] for an
// empty or inverted span and with [ErrSpanOutOfRange] for a span outside
// [0, rune length of text). Rendering never fails once New has succeeded.
func New(text string, spans []span.Span) (*Markup, error) {
	runes := []rune(text)
	sorted := slices.Clone(spans)
	span.Sort(sorted)

	for _, s := range sorted {
		if s.Start >= s.Stop {
			return nil, fmt.Errorf("%w: got %s", span.ErrInvalidRange, s)
		}
		if s.Start < 0 || s.Stop > len(runes) {
			return nil, fmt.Errorf("%w: %s in a text of %d runes", ErrSpanOutOfRange, s, len(runes))
		}
	}

	return &Markup{
		text:   text,
		runes:  runes,
		spans:  sorted,
		groups: layout.Compute(sorted),
	}, nil
}

// Text returns the original annotated text, line breaks and tabs included.
func (m *Markup) Text() string { return m.text }

// RuneLen returns the text length in runes, the unit all span offsets use.
func (m *Markup) RuneLen() int { return len(m.runes) }

// Slice returns the text between two rune offsets.
func (m *Markup) Slice(start, stop int) string { return string(m.runes[start:stop]) }

// Spans returns the document's spans in canonical order.
// The returned slice is a copy and can be modified freely.
func (m *Markup) Spans() []span.Span { return slices.Clone(m.spans) }

// Groups returns the overlap layout computed at construction, ordered by
// start. The result is shared, not copied; treat it as read-only.
func (m *Markup) Groups() []layout.Group { return m.groups }
