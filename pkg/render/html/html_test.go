package html

import (
	"strings"
	"testing"

	"github.com/spanmark/spanmark/pkg/markup"
	"github.com/spanmark/spanmark/pkg/span"
)

func mustMarkup(t *testing.T, text string, spans ...span.Span) *markup.Markup {
	t.Helper()
	m, err := markup.New(text, spans)
	if err != nil {
		t.Fatalf("markup.New() error: %v", err)
	}
	return m
}

func TestRenderBox(t *testing.T) {
	m := mustMarkup(t, "hi", span.Span{Start: 0, Stop: 2, Type: "X"})
	want := `<div style="white-space: pre-wrap">` +
		`<span style="padding: 0.15em; border-radius: 0.25em; border: 1px solid #9cb4cf; background: #aec7e8">hi</span>` +
		`</div>`
	if got := string(RenderBox(m)); got != want {
		t.Errorf("RenderBox() = %q, want %q", got, want)
	}
}

func TestRenderBoxGaps(t *testing.T) {
	m := mustMarkup(t, "say hi now", span.Span{Start: 4, Stop: 6, Type: "X"})
	got := string(RenderBox(m))
	if !strings.HasPrefix(got, `<div style="white-space: pre-wrap">say `) {
		t.Errorf("missing leading text: %q", got)
	}
	if !strings.HasSuffix(got, ` now</div>`) {
		t.Errorf("missing trailing text: %q", got)
	}
}

func TestRenderBoxLabels(t *testing.T) {
	m := mustMarkup(t, "hi", span.Span{Start: 0, Stop: 2, Type: "X"})
	got := string(RenderBox(m, WithLabels()))
	if !strings.Contains(got, `<sup`) || !strings.Contains(got, `>X</sup>`) {
		t.Errorf("missing label superscript: %q", got)
	}

	// Untyped spans get no superscript even with labels on.
	m = mustMarkup(t, "hi", span.Span{Start: 0, Stop: 2})
	if got := string(RenderBox(m, WithLabels())); strings.Contains(got, "<sup") {
		t.Errorf("untyped span grew a label: %q", got)
	}
}

func TestRenderBoxEscapes(t *testing.T) {
	m := mustMarkup(t, "a<b>&c", span.Span{Start: 1, Stop: 4, Type: "T<G"})
	got := string(RenderBox(m, WithLabels()))
	if strings.Contains(got, "<b>") {
		t.Errorf("text not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") {
		t.Errorf("expected escaped text in %q", got)
	}
	if !strings.Contains(got, "T&lt;G") {
		t.Errorf("label not escaped: %q", got)
	}
}

func TestRenderBoxWithoutColor(t *testing.T) {
	m := mustMarkup(t, "hi", span.Span{Start: 0, Stop: 2, Type: "X"})
	got := string(RenderBox(m, WithoutColor()))
	if !strings.Contains(got, "#ffffb8") {
		t.Errorf("expected the neutral background in %q", got)
	}
}

func TestRenderBoxOverlapping(t *testing.T) {
	// Box output reads spans linearly; overlapping input must not panic or
	// emit text twice going backwards.
	m := mustMarkup(t, "abcdef",
		span.Span{Start: 0, Stop: 4, Type: "A"},
		span.Span{Start: 2, Stop: 6, Type: "B"},
	)
	got := string(RenderBox(m))
	if !strings.HasPrefix(got, `<div`) || !strings.HasSuffix(got, `</div>`) {
		t.Errorf("malformed output: %q", got)
	}
}

func TestRenderLine(t *testing.T) {
	m := mustMarkup(t, "ab cd",
		span.Span{Start: 0, Stop: 2, Type: "X"},
		span.Span{Start: 1, Stop: 4, Type: "Y"},
	)
	got := string(RenderLine(m))
	// One overlap group, two rows: two nested underline spans around the
	// group text, with padding growing by level.
	if strings.Count(got, "border-bottom") != 2 {
		t.Errorf("got %d underlines, want 2: %q", strings.Count(got, "border-bottom"), got)
	}
	if !strings.Contains(got, "padding-bottom: 1px") || !strings.Contains(got, "padding-bottom: 4px") {
		t.Errorf("level padding missing: %q", got)
	}
	if !strings.HasSuffix(got, "d</div>") {
		t.Errorf("trailing text missing: %q", got)
	}
}

func TestRenderLineLabels(t *testing.T) {
	m := mustMarkup(t, "hello world", span.Span{Start: 0, Stop: 5, Type: "A"})
	got := string(RenderLine(m, WithLabels()))
	if strings.Count(got, "border-bottom") != 1 {
		t.Errorf("got %d underlines, want 1: %q", strings.Count(got, "border-bottom"), got)
	}
	if !strings.Contains(got, "font-size: 7px") {
		t.Errorf("label block missing: %q", got)
	}
	if !strings.Contains(got, ">A</span>") && !strings.Contains(got, ";\">A</span>") {
		t.Errorf("label text missing: %q", got)
	}
}

func TestRenderLineLabelsStacked(t *testing.T) {
	m := mustMarkup(t, "abc",
		span.Span{Start: 0, Stop: 3, Type: "A"},
		span.Span{Start: 0, Stop: 3, Type: "B"},
	)
	got := string(RenderLine(m, WithLabels()))
	if strings.Count(got, `display: block`) != 2 {
		t.Errorf("expected 2 stacked label lines: %q", got)
	}
}

func TestRenderLineNoSpans(t *testing.T) {
	m := mustMarkup(t, "plain")
	want := `<div style="line-height: 1.6em; white-space: pre-wrap">plain</div>`
	if got := string(RenderLine(m)); got != want {
		t.Errorf("RenderLine() = %q, want %q", got, want)
	}
}
