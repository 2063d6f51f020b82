package runoff

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/runoff/hytab"
)

func wordOf(s string) *Word {
	w := &Word{}
	for _, r := range s {
		w.Append(r)
	}
	return w
}

func markPositions(w *Word) []int {
	var pos []int
	for i, u := range w.units {
		if u.Mark != NoMark {
			pos = append(pos, i)
		}
	}
	return pos
}

func checkMarks(t *testing.T, word string, threshold int, want ...int) *Word {
	t.Helper()
	w := wordOf(word)
	NewHyphenator().Hyphenate(w, threshold)
	got := markPositions(w)
	if len(got) != len(want) {
		t.Fatalf("%q should have marks %v, has %v", word, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q should have marks %v, has %v", word, want, got)
		}
	}
	return w
}

func TestHyphenateShortWords(t *testing.T) {
	for _, word := range []string{"a", "is", "the", "four"} {
		checkMarks(t, word, 240)
	}
}

func TestHyphenateBrokenWords(t *testing.T) {
	// Interior punctuation means no hyphenation at all.
	for _, word := range []string{"can't", "foo-bar", "x86_64abc"} {
		checkMarks(t, word, 240)
	}
}

func TestHyphenateSuffixes(t *testing.T) {
	w := checkMarks(t, "comfortable", 240, 7)
	if w.units[7].Mark != MarkSuffix {
		t.Fatalf("mark source should be MarkSuffix, is %v", w.units[7].Mark)
	}
	checkMarks(t, "mountain", 240, 5)
	checkMarks(t, "fearless", 240, 4)
	checkMarks(t, "printing", 240, 5)
	checkMarks(t, "governments", 240, 6)
	// Suffixes chain: "ly" strips, then "ed" strips again.
	checkMarks(t, "reportedly", 240, 6, 8)
	// A bare plural never marks, and nothing else fires here.
	checkMarks(t, "strengths", 240)
}

func TestHyphenatePunctuationSkirt(t *testing.T) {
	w := wordOf("(comfortable),")
	NewHyphenator().Hyphenate(w, 240)
	got := markPositions(w)
	if len(got) != 1 || got[0] != 8 {
		t.Fatalf("core behind punctuation should mark at 8, has %v", got)
	}
}

func TestHyphenateDigram(t *testing.T) {
	w := checkMarks(t, "algorithm", 8, 2, 5)
	for _, p := range []int{2, 5} {
		if w.units[p].Mark != MarkDigram {
			t.Fatalf("mark source at %d should be MarkDigram, is %v", p, w.units[p].Mark)
		}
	}
	// Below-threshold scores leave the stem alone.
	checkMarks(t, "algorithm", 9)
	checkMarks(t, "understand", 6, 6)
	checkMarks(t, "understand", 240)
}

func TestHyphenateMarkInvariant(t *testing.T) {
	words := []string{
		"comfortable", "algorithm", "reportedly", "xylophones",
		"aaaaa", "zzzzz", "(hello),", "performance",
	}
	for _, word := range words {
		w := wordOf(word)
		NewHyphenator().Hyphenate(w, 0)
		start, end, ok := hyphenCore(w)
		if !ok {
			continue
		}
		if w.units[start].Mark != NoMark || w.units[end].Mark != NoMark {
			t.Fatalf("%q has a mark on a core boundary: %v", word, markPositions(w))
		}
	}
}

func TestExceptionWords(t *testing.T) {
	h := NewHyphenator()
	if err := h.AddException("hy-phen-ate"); err != nil {
		t.Fatal(err)
	}
	w := wordOf("hyphenate")
	h.Hyphenate(w, 240)
	got := markPositions(w)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Fatalf("exception should mark 2 and 6, has %v", got)
	}
	if w.units[2].Mark != MarkException {
		t.Fatalf("mark source should be MarkException, is %v", w.units[2].Mark)
	}
	// Plural of an exception word matches the entry as well.
	w = wordOf("hyphenates")
	h.Hyphenate(w, 240)
	got = markPositions(w)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Fatalf("plural exception should mark 2 and 6, has %v", got)
	}
	// Other words fall through to rule analysis.
	w = wordOf("hyphenated")
	h.Hyphenate(w, 240)
	got = markPositions(w)
	if len(got) != 1 || got[0] != 8 {
		t.Fatalf("non-exception word should mark at 8, has %v", got)
	}
}

func TestAddExceptionRejects(t *testing.T) {
	h := NewHyphenator()
	for _, bad := range []string{"", "-word", "foo_bar", "--"} {
		if err := h.AddException(bad); !errors.Is(err, ErrBadException) {
			t.Fatalf("%q should be rejected, got %v", bad, err)
		}
	}
}

func TestLoadExceptions(t *testing.T) {
	h := NewHyphenator()
	input := "# built-in overrides\nhy-phen-ate  ta-ble\n\npro-gram # trailing note\n"
	n, err := h.LoadExceptions(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("should load 3 words, loaded %d", n)
	}
	w := wordOf("tables")
	h.Hyphenate(w, 240)
	if got := markPositions(w); len(got) != 1 || got[0] != 2 {
		t.Fatalf("tables should mark at 2, has %v", got)
	}
}

func TestSuffixVowelCheck(t *testing.T) {
	table, err := hytab.Compile([]hytab.SuffixRule{{Suffix: "zed", Hyphen: true}})
	if err != nil {
		t.Fatal(err)
	}
	h := NewHyphenator()
	h.SetSuffixes(table)
	// No vowel before the suffix boundary discards the mark.
	w := wordOf("bzzzed")
	h.Hyphenate(w, 240)
	if got := markPositions(w); len(got) != 0 {
		t.Fatalf("vowel check should discard the mark, has %v", got)
	}
	w = wordOf("buzzed")
	h.Hyphenate(w, 240)
	if got := markPositions(w); len(got) != 1 || got[0] != 3 {
		t.Fatalf("buzzed should mark at 3, has %v", got)
	}
}
