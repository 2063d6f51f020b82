package runoff

import (
	"strings"
	"testing"
)

type scriptStep struct {
	tok  Token
	text string
}

// scriptSource replays a fixed token sequence, filling the word
// buffer the way the input reader does.
type scriptSource struct {
	steps []scriptStep
	pos   int
}

func (s *scriptSource) Next(w *Word) (Token, error) {
	if s.pos >= len(s.steps) {
		return Token{Kind: TokenEOF}, nil
	}
	st := s.steps[s.pos]
	s.pos++
	if st.tok.Kind == TokenWord || st.tok.Kind == TokenLine {
		w.Reset()
		for _, r := range st.text {
			w.Append(r)
		}
	}
	return st.tok, nil
}

func wordSteps(ss ...string) []scriptStep {
	var steps []scriptStep
	for _, s := range ss {
		steps = append(steps, scriptStep{tok: Token{Kind: TokenWord}, text: s})
	}
	return steps
}

func runScript(t *testing.T, cfg *LayoutConfig, steps []scriptStep) *sinkOutput {
	t.Helper()
	out := &sinkOutput{}
	pager := NewPaginator(out, nil, cfg)
	comp := NewComposer(NewHyphenator())
	r := NewRunner(&scriptSource{steps: steps}, out, pager, comp, cfg)
	if err := r.Run(); err != nil {
		t.Fatalf("run should not fail: %v", err)
	}
	return out
}

func TestRunRaggedRight(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0
	cfg.LineLength = 10
	cfg.Adjust = AdjustLeft
	out := runScript(t, &cfg, wordSteps("aa", "bb", "cc", "dd"))
	if got := out.buf.String(); got != "aa bb cc\ndd\n" {
		t.Fatalf("ragged output should wrap after cc, is %q", got)
	}
}

func TestRunJustifies(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0
	cfg.LineLength = 10
	out := runScript(t, &cfg, wordSteps("aa", "bb", "cc", "dd"))
	// The wrapped line spreads its 4 free columns over 2 gaps; the
	// final line stays ragged.
	if got := out.buf.String(); got != "aa  bb  cc\ndd\n" {
		t.Fatalf("justified output should pad both gaps, is %q", got)
	}
}

func TestRunHyphenWrap(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0
	cfg.LineLength = 14
	cfg.Adjust = AdjustLeft
	out := runScript(t, &cfg, wordSteps("most", "comfortable", "chairs"))
	want := "most comfort-\nable chairs\n"
	if got := out.buf.String(); got != want {
		t.Fatalf("output should break at the hyphen point:\n%q\nis\n%q", want, got)
	}
}

func TestRunCopyMode(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0
	cfg.LineLength = 20
	steps := []scriptStep{
		{tok: Token{Kind: TokenLine}, text: "no  fill"},
		{tok: Token{Kind: TokenLine, Centered: true}, text: "mid"},
	}
	out := runScript(t, &cfg, steps)
	want := "no  fill\n" + strings.Repeat(" ", 8) + "mid\n"
	if got := out.buf.String(); got != want {
		t.Fatalf("copied lines should pass through verbatim:\n%q\nis\n%q", want, got)
	}
}

func TestRunTempIndent(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0
	cfg.LineLength = 20
	cfg.Indent = 2
	cfg.TempIndent = 5
	steps := append(wordSteps("one"), scriptStep{tok: Token{Kind: TokenBreak}})
	steps = append(steps, wordSteps("two")...)
	out := runScript(t, &cfg, steps)
	// The temporary indent covers exactly one output line, then the
	// running indent resumes.
	if got := out.buf.String(); got != "     one\n  two\n" {
		t.Fatalf("indents should be 5 then 2, is %q", got)
	}
}

func TestRunTempIndentSurvivesEmptyBreak(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0
	cfg.LineLength = 20
	cfg.TempIndent = 5
	steps := []scriptStep{{tok: Token{Kind: TokenBreak}}}
	steps = append(steps, wordSteps("one")...)
	out := runScript(t, &cfg, steps)
	if got := out.buf.String(); got != "     one\n" {
		t.Fatalf("a break with nothing pending should keep the indent, is %q", got)
	}
}

func TestRunStopsAtLastPage(t *testing.T) {
	cfg := shortPageConfig()
	cfg.Titles = false
	cfg.LastPage = 1
	out := &sinkOutput{}
	pager := NewPaginator(out, nil, &cfg)
	if pager.bottomLine != 7 {
		t.Fatalf("title-less short page should hold 7 lines, is %d", pager.bottomLine)
	}
	steps := []scriptStep{{tok: Token{Kind: TokenBlank, N: 8}}}
	r := NewRunner(&scriptSource{steps: steps}, out, pager, NewComposer(nil), &cfg)
	if err := r.Run(); err != nil {
		t.Fatalf("a page bound is a normal end, got %v", err)
	}
	if got := out.buf.String(); got != strings.Repeat("\n", 11) {
		t.Fatalf("page 1 should emit 11 newlines, is %d: %q",
			strings.Count(got, "\n"), got)
	}
	if out.flushes != 1 || len(out.pageStarts) != 1 {
		t.Fatalf("run should flush once and never start page 2, flushes %d starts %v",
			out.flushes, out.pageStarts)
	}
}

func TestRunFlushesTrailingLine(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0
	cfg.LineLength = 30
	out := runScript(t, &cfg, wordSteps("left", "over"))
	if got := out.buf.String(); got != "left over\n" {
		t.Fatalf("the final partial line should be flushed, is %q", got)
	}
	if out.flushes != 1 {
		t.Fatalf("end of input should flush the writer, flushes %d", out.flushes)
	}
}
