package runoff

import (
	"fmt"
	"strings"
	"testing"
)

// sinkOutput records everything the paginator hands to its output.
type sinkOutput struct {
	buf        strings.Builder
	pageStarts []int
	flushes    int
	pauses     int
}

func (o *sinkOutput) Emit(p []byte) error { o.buf.Write(p); return nil }
func (o *sinkOutput) Flush() error        { o.flushes++; return nil }
func (o *sinkOutput) PageStart(n int)     { o.pageStarts = append(o.pageStarts, n) }
func (o *sinkOutput) Pause() error        { o.pauses++; return nil }

// stampTitles makes parity and page number visible in the output.
type stampTitles struct{}

func (stampTitles) Header(even bool, page int) string {
	return fmt.Sprintf("HEAD-%s-%d", parityName(even), page)
}

func (stampTitles) Footer(even bool, page int) string {
	return fmt.Sprintf("FOOT-%s-%d", parityName(even), page)
}

func parityName(even bool) string {
	if even {
		return "even"
	}
	return "odd"
}

func shortPageConfig() LayoutConfig {
	cfg := Defaults()
	cfg.PageLength = 10
	cfg.TopMargin = 1
	cfg.HeaderMargin = 1
	cfg.FooterMargin = 1
	cfg.BottomMargin = 1
	return cfg
}

func TestPageBreakAfterSixLines(t *testing.T) {
	cfg := shortPageConfig()
	out := &sinkOutput{}
	p := NewPaginator(out, stampTitles{}, &cfg)
	if p.bottomLine != 6 {
		t.Fatalf("10 lines minus margins and title should leave 6, is %d", p.bottomLine)
	}
	for i := 0; i < 7; i++ {
		if sig, err := p.Blank(&cfg); sig != Continue || err != nil {
			t.Fatalf("blank %d should continue, got %v/%v", i, sig, err)
		}
	}
	if got := fmt.Sprint(out.pageStarts); got != "[1 2]" {
		t.Fatalf("seven lines on a six-line page should start pages 1 and 2, got %v",
			out.pageStarts)
	}
	want := "\n" + // top margin
		"HEAD-odd-1\n" +
		"\n" + // header margin
		strings.Repeat("\n", 6) + // the six lines that fit
		"\n" + // fill down to the footer
		"FOOT-odd-1\n" +
		"\n" + // bottom margin
		"\n" + // top margin, second page
		"HEAD-even-2\n" +
		"\n" + // header margin
		"\n" // the seventh line
	if got := out.buf.String(); got != want {
		t.Fatalf("page stream should be\n%q\nis\n%q", want, got)
	}
	if p.Vertical() > p.bottomLine {
		t.Fatalf("vertical position %d should never pass the bottom %d",
			p.Vertical(), p.bottomLine)
	}
}

func TestFinishLineDecorations(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0 // no pagination
	cfg.PageOffset = 3
	cfg.Numbering = NumberRun
	out := &sinkOutput{}
	p := NewPaginator(out, nil, &cfg)

	if _, err := p.FinishLine(lineWith(20, "hi"), 2, &cfg); err != nil {
		t.Fatalf("finish should not fail: %v", err)
	}
	if _, err := p.FinishLine(lineWith(20, "ho"), 2, &cfg); err != nil {
		t.Fatalf("finish should not fail: %v", err)
	}
	want := "     1   hi\n" + "     2   ho\n"
	if got := out.buf.String(); got != want {
		t.Fatalf("offset and numbering should render as\n%q\nis\n%q", want, got)
	}

	cfg.LineSpacing = 2
	p.FinishLine(lineWith(20, "deep"), 0, &cfg)
	if got := out.buf.String(); !strings.HasSuffix(got, "   3 deep\n\n") {
		t.Fatalf("double spacing should append an extra newline, got %q", got)
	}
}

func TestNumberSuppression(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 0
	cfg.Numbering = NumberRun
	cfg.NumberSkip = 2
	out := &sinkOutput{}
	p := NewPaginator(out, nil, &cfg)
	for i := 0; i < 3; i++ {
		p.FinishLine(lineWith(20, "x"), 0, &cfg)
	}
	// The first two numbers are blanked but keep the column width.
	want := "    x\n" + "    x\n" + "  1 x\n"
	if got := out.buf.String(); got != want {
		t.Fatalf("suppressed numbers should render as\n%q\nis\n%q", want, got)
	}
	if cfg.NumberSkip != 0 {
		t.Fatalf("suppression count should be used up, is %d", cfg.NumberSkip)
	}
}

func TestRecomputeBottomResets(t *testing.T) {
	cfg := Defaults()
	cfg.PageLength = 5
	cfg.TopMargin = 2
	cfg.HeaderMargin = 2
	cfg.FooterMargin = 2
	cfg.BottomMargin = 2
	out := &sinkOutput{}
	p := NewPaginator(out, nil, &cfg)
	if cfg.PageLength != 66 || cfg.FooterMargin != 1 || cfg.BottomMargin != 3 {
		t.Fatalf("impossible geometry should reset the page dimensions, cfg is %+v", cfg)
	}
	if p.bottomLine != 60 {
		t.Fatalf("reset geometry should leave 60 content lines, is %d", p.bottomLine)
	}
}

func TestNeedEjects(t *testing.T) {
	cfg := shortPageConfig()
	out := &sinkOutput{}
	p := NewPaginator(out, nil, &cfg)
	p.Blank(&cfg)
	p.Blank(&cfg)
	if sig, _ := p.Need(4, &cfg); sig != Continue || len(out.pageStarts) != 1 {
		t.Fatalf("4 needed with 4 left should stay, starts %v", out.pageStarts)
	}
	if sig, _ := p.Need(5, &cfg); sig != Continue || len(out.pageStarts) != 2 {
		t.Fatalf("5 needed with 4 left should eject, starts %v", out.pageStarts)
	}
	if p.Page() != 2 || p.Vertical() != 0 {
		t.Fatalf("after the eject page should be 2 at the top, is %d/%d",
			p.Page(), p.Vertical())
	}
}

func TestEjectOnUntouchedPage(t *testing.T) {
	cfg := shortPageConfig()
	out := &sinkOutput{}
	p := NewPaginator(out, nil, &cfg)
	if sig, err := p.Eject(&cfg); sig != Continue || err != nil {
		t.Fatalf("eject on a fresh page should continue, got %v/%v", sig, err)
	}
	if out.buf.Len() != 0 || p.Page() != 1 {
		t.Fatalf("eject on a fresh page should not move, page %d output %q",
			p.Page(), out.buf.String())
	}
}

func TestSkipInsertsBlankPage(t *testing.T) {
	cfg := shortPageConfig()
	out := &sinkOutput{}
	p := NewPaginator(out, stampTitles{}, &cfg)
	p.SetSkip(1)
	if sig, err := p.Blank(&cfg); sig != Continue || err != nil {
		t.Fatalf("blank should continue, got %v/%v", sig, err)
	}
	want := "\n" + // top margin
		"HEAD-odd-1\n" +
		"\n" + // header margin
		strings.Repeat("\n", 7) + // empty body filled to the footer
		"FOOT-odd-1\n" +
		"\n" + // bottom margin
		"\n" + // top margin, second page
		"HEAD-even-2\n" +
		"\n" + // header margin
		"\n" // the line itself
	if got := out.buf.String(); got != want {
		t.Fatalf("skipped page should be emitted blank, got\n%q\nwant\n%q", got, want)
	}
	if p.Page() != 2 || p.Vertical() != 1 {
		t.Fatalf("line should land on page 2, is page %d vertical %d",
			p.Page(), p.Vertical())
	}
}

func TestLastPageStopsRun(t *testing.T) {
	cfg := shortPageConfig()
	cfg.LastPage = 1
	out := &sinkOutput{}
	p := NewPaginator(out, nil, &cfg)
	for i := 0; i < 6; i++ {
		if sig, _ := p.Blank(&cfg); sig != Continue {
			t.Fatalf("line %d should continue", i)
		}
	}
	sig, err := p.Blank(&cfg)
	if sig != Stop || err != nil {
		t.Fatalf("leaving the last page should stop, got %v/%v", sig, err)
	}
	if out.flushes != 1 {
		t.Fatalf("stop should flush pending output, flushes %d", out.flushes)
	}
	if len(out.pageStarts) != 1 {
		t.Fatalf("no page should start past the last, starts %v", out.pageStarts)
	}
}

func TestStopModePausesBetweenPages(t *testing.T) {
	cfg := shortPageConfig()
	cfg.StopMode = true
	out := &sinkOutput{}
	p := NewPaginator(out, nil, &cfg)
	for i := 0; i < 7; i++ {
		p.Blank(&cfg)
	}
	if out.pauses != 1 {
		t.Fatalf("stop mode should pause once entering page 2, pauses %d", out.pauses)
	}
}

func TestPageNumberingRestarts(t *testing.T) {
	cfg := shortPageConfig()
	cfg.Numbering = NumberPage
	out := &sinkOutput{}
	p := NewPaginator(out, nil, &cfg)
	for i := 0; i < 6; i++ {
		p.FinishLine(lineWith(20, "x"), 0, &cfg)
	}
	if !strings.HasSuffix(out.buf.String(), "  6 x\n") {
		t.Fatalf("sixth line should be numbered 6, got %q", out.buf.String())
	}
	p.FinishLine(lineWith(20, "x"), 0, &cfg)
	if !strings.HasSuffix(out.buf.String(), "  1 x\n") {
		t.Fatalf("numbering should restart on the new page, got %q", out.buf.String())
	}
}
