package wrap

import (
	"strings"
	"testing"
)

func collect(text string, width int) []Fold {
	var folds []Fold
	for f := range Lines(text, width) {
		folds = append(folds, f)
	}
	return folds
}

func TestLinesEmpty(t *testing.T) {
	if folds := collect("", 10); len(folds) != 0 {
		t.Errorf("got %d folds, want 0", len(folds))
	}
}

func TestLinesShort(t *testing.T) {
	folds := collect("hello", 70)
	want := []Fold{{Start: 0, Stop: 5, Text: "hello"}}
	if len(folds) != 1 || folds[0] != want[0] {
		t.Errorf("folds = %v, want %v", folds, want)
	}
}

func TestLinesGreedyPacking(t *testing.T) {
	folds := collect("aa bb cc", 5)
	want := []Fold{
		{Start: 0, Stop: 5, Text: "aa bb"},
		{Start: 5, Stop: 8, Text: " cc"},
	}
	if len(folds) != len(want) {
		t.Fatalf("got %d folds, want %d: %v", len(folds), len(want), folds)
	}
	for i := range want {
		if folds[i] != want[i] {
			t.Errorf("folds[%d] = %v, want %v", i, folds[i], want[i])
		}
	}
}

func TestLinesHardSplit(t *testing.T) {
	folds := collect("abcdefghij", 4)
	want := []Fold{
		{Start: 0, Stop: 4, Text: "abcd"},
		{Start: 4, Stop: 8, Text: "efgh"},
		{Start: 8, Stop: 10, Text: "ij"},
	}
	if len(folds) != len(want) {
		t.Fatalf("got %d folds, want %d: %v", len(folds), len(want), folds)
	}
	for i := range want {
		if folds[i] != want[i] {
			t.Errorf("folds[%d] = %v, want %v", i, folds[i], want[i])
		}
	}
}

func TestLinesNewline(t *testing.T) {
	// A removed line break is carried as a single trailing space, so the
	// folds stay contiguous.
	folds := collect("ab\ncd", 70)
	want := []Fold{
		{Start: 0, Stop: 3, Text: "ab "},
		{Start: 3, Stop: 5, Text: "cd"},
	}
	if len(folds) != len(want) {
		t.Fatalf("got %d folds, want %d: %v", len(folds), len(want), folds)
	}
	for i := range want {
		if folds[i] != want[i] {
			t.Errorf("folds[%d] = %v, want %v", i, folds[i], want[i])
		}
	}
}

func TestLinesTrailingNewline(t *testing.T) {
	folds := collect("ab\n", 70)
	want := []Fold{{Start: 0, Stop: 3, Text: "ab "}}
	if len(folds) != 1 || folds[0] != want[0] {
		t.Errorf("folds = %v, want %v", folds, want)
	}
}

func TestLinesTabSingleColumn(t *testing.T) {
	folds := collect("a\tb", 3)
	if len(folds) != 1 || folds[0].Text != "a\tb" {
		t.Errorf("folds = %v, want one fold %q", folds, "a\tb")
	}
}

func TestLinesUnicode(t *testing.T) {
	// Offsets count runes, not bytes.
	folds := collect("héllo wörld", 6)
	want := []Fold{
		{Start: 0, Stop: 6, Text: "héllo "},
		{Start: 6, Stop: 11, Text: "wörld"},
	}
	if len(folds) != len(want) {
		t.Fatalf("got %d folds, want %d: %v", len(folds), len(want), folds)
	}
	for i := range want {
		if folds[i] != want[i] {
			t.Errorf("folds[%d] = %v, want %v", i, folds[i], want[i])
		}
	}
}

func TestLinesProperties(t *testing.T) {
	texts := []string{
		"hello world",
		"one two three four five six seven eight nine ten",
		"line one\nline two\nline three",
		"nowhitespaceatallinthisverylongtoken plus more",
		"  leading and   runs of    spaces  ",
		"mixed\ttabs\tand spaces\nwith breaks\n",
	}
	for _, text := range texts {
		for _, width := range []int{1, 3, 7, 10, 70} {
			folds := collect(text, width)

			// Folds tile the text contiguously.
			pos := 0
			var joined strings.Builder
			for _, f := range folds {
				if f.Start != pos {
					t.Errorf("width %d %q: fold starts at %d, want %d", width, text, f.Start, pos)
				}
				if got := len([]rune(f.Text)); got != f.Stop-f.Start {
					t.Errorf("width %d %q: fold text %d runes, range %d", width, text, got, f.Stop-f.Start)
				}
				if len([]rune(f.Text)) > width {
					t.Errorf("width %d %q: fold %q exceeds width", width, text, f.Text)
				}
				joined.WriteString(f.Text)
				pos = f.Stop
			}
			if pos != len([]rune(text)) {
				t.Errorf("width %d %q: folds end at %d, want %d", width, text, pos, len([]rune(text)))
			}

			// Concatenation loses nothing: each line break resurfaces as one
			// space.
			if want := strings.ReplaceAll(text, "\n", " "); joined.String() != want {
				t.Errorf("width %d %q: joined = %q, want %q", width, text, joined.String(), want)
			}
		}
	}
}

func TestLinesEarlyStop(t *testing.T) {
	count := 0
	for range Lines("a b c d e f g h", 3) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("consumed %d folds, want 2", count)
	}
}
