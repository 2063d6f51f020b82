package runoff

import (
	"bytes"
	"fmt"
	"math"
)

// Signal is the paginator's verdict after a page transition: keep
// composing, or a configured page bound was reached and the run ends
// normally.
type Signal int

const (
	Continue Signal = iota
	Stop
)

// Header and footer each occupy one output line when titles are on.
const titleHeight = 1

type pagePhase uint8

const (
	phaseTop   pagePhase = iota // untouched page, title block pending
	phaseBody                   // page holds output
	phaseEject                  // page transition in progress
)

// PageState is the part of pagination the composer consults: where on
// the page the next line will land.
type PageState struct {
	vertical   int // content lines already placed on this page
	bottomLine int // content lines that fit on a page
	page       int
	paginated  bool
}

// Room returns the content lines left before the page bottom.
func (s *PageState) Room() int {
	if !s.paginated {
		return math.MaxInt
	}
	return s.bottomLine - s.vertical
}

// Page returns the number of the page being assembled.
func (s *PageState) Page() int { return s.page }

// Vertical returns the content lines placed on the current page.
func (s *PageState) Vertical() int { return s.vertical }

// A Paginator turns finished lines into page-shaped output: title
// blocks, margins, line numbering and page transitions. It writes
// through the Output collaborator and never past a configured last
// page.
type Paginator struct {
	PageState
	out    Output
	titles Titles

	phase   pagePhase
	skip    int  // blank pages owed at the next transition
	npn     int  // pending renumber, applied at the next transition
	lnumber int  // line numbering counter
	even    bool // justification fill parity flip-flop
}

// NewPaginator returns a paginator writing to out. titles may be nil
// for title-less output.
func NewPaginator(out Output, titles Titles, cfg *LayoutConfig) *Paginator {
	p := &Paginator{out: out, titles: titles, phase: phaseTop, lnumber: 1}
	p.page = 1
	p.RecomputeBottom(cfg)
	out.PageStart(1)
	return p
}

// RecomputeBottom derives the page geometry from cfg. An impossible
// layout resets the page dimensions to their defaults and recomputes
// once; that recomputation cannot fail again.
func (p *Paginator) RecomputeBottom(cfg *LayoutConfig) {
	if cfg.PageLength <= 0 {
		p.paginated = false
		p.bottomLine = 0
		return
	}
	bl := contentHeight(cfg)
	if bl <= 0 {
		d := Defaults()
		cfg.PageLength = d.PageLength
		cfg.TopMargin = d.TopMargin
		cfg.HeaderMargin = d.HeaderMargin
		cfg.FooterMargin = d.FooterMargin
		cfg.BottomMargin = d.BottomMargin
		bl = contentHeight(cfg)
		tracer().Infof("impossible page geometry, margins reset")
	}
	p.paginated = true
	p.bottomLine = bl
	if p.vertical > bl {
		p.vertical = bl
	}
}

func contentHeight(cfg *LayoutConfig) int {
	hh := 0
	if cfg.Titles {
		hh = titleHeight
	}
	return cfg.PageLength - cfg.TopMargin - cfg.HeaderMargin - cfg.FooterMargin - hh
}

// FinishLine emits one finished content line: page transition if the
// page is full, the title block on a fresh page, then page offset,
// number field, indent and the rendered line.
func (p *Paginator) FinishLine(ln *Line, indent int, cfg *LayoutConfig) (Signal, error) {
	if p.paginated && p.vertical >= p.bottomLine {
		if sig, err := p.Eject(cfg); sig == Stop || err != nil {
			return sig, err
		}
	}
	if sig, err := p.openPage(cfg); sig == Stop || err != nil {
		return sig, err
	}
	var content bytes.Buffer
	ln.renderInto(&content, cfg.Adjust, p.even)
	if ln.adjusted {
		p.even = !p.even
	}
	var buf bytes.Buffer
	if content.Len() > 0 || cfg.Numbering != NumberOff {
		pad(&buf, cfg.PageOffset)
		if cfg.Numbering != NumberOff {
			p.numberField(&buf, cfg)
		}
		pad(&buf, indent)
		buf.Write(content.Bytes())
	}
	buf.WriteByte('\n')
	ls := max(cfg.LineSpacing, 1)
	for i := 1; i < ls; i++ {
		buf.WriteByte('\n')
	}
	if err := p.out.Emit(buf.Bytes()); err != nil {
		return Continue, err
	}
	p.vertical += ls
	p.phase = phaseBody
	return Continue, nil
}

// Blank places one empty content line, a bare newline with no offset
// or numbering. Blank lines trigger page transitions like text does.
func (p *Paginator) Blank(cfg *LayoutConfig) (Signal, error) {
	if p.paginated && p.vertical >= p.bottomLine {
		if sig, err := p.Eject(cfg); sig == Stop || err != nil {
			return sig, err
		}
	}
	if sig, err := p.openPage(cfg); sig == Stop || err != nil {
		return sig, err
	}
	if err := p.out.Emit([]byte{'\n'}); err != nil {
		return Continue, err
	}
	p.vertical++
	p.phase = phaseBody
	return Continue, nil
}

// Need ejects unless n more content lines fit on the current page.
func (p *Paginator) Need(n int, cfg *LayoutConfig) (Signal, error) {
	if !p.paginated || p.Room() >= n {
		return Continue, nil
	}
	return p.Eject(cfg)
}

// Eject closes the current page: blank fill down to the footer
// position, the parity footer, the bottom margin, then the page
// number advances. On an untouched page it is a no-op, so ejecting
// at the top of a page never yields an empty page by accident.
func (p *Paginator) Eject(cfg *LayoutConfig) (Signal, error) {
	if !p.paginated || p.phase == phaseTop {
		return Continue, nil
	}
	p.phase = phaseEject
	if n := p.bottomLine + cfg.FooterMargin - p.vertical; n > 0 {
		if err := p.blankLines(n); err != nil {
			return Continue, err
		}
	}
	if cfg.Titles {
		if err := p.titleLine(p.footer(p.page%2 == 0, p.page), cfg); err != nil {
			return Continue, err
		}
	}
	if cfg.Numbering == NumberPage {
		p.lnumber = 1
	}
	if err := p.blankLines(cfg.BottomMargin); err != nil {
		return Continue, err
	}
	p.vertical = 0
	p.page++
	if p.npn > 0 {
		p.page = p.npn
		p.npn = 0
	}
	p.phase = phaseTop
	if p.page > cfg.LastPage {
		tracer().Debugf("page bound %d reached", cfg.LastPage)
		if err := p.out.Flush(); err != nil {
			return Stop, err
		}
		return Stop, nil
	}
	p.out.PageStart(p.page)
	if cfg.StopMode && p.page >= cfg.FirstPage {
		if err := p.out.Flush(); err != nil {
			return Continue, err
		}
		if err := p.out.Pause(); err != nil {
			return Continue, err
		}
	}
	return Continue, nil
}

// openPage emits the top block of a fresh page and settles any owed
// blank pages: top margin, parity header, header margin.
func (p *Paginator) openPage(cfg *LayoutConfig) (Signal, error) {
	for p.paginated && p.phase == phaseTop {
		if err := p.blankLines(cfg.TopMargin); err != nil {
			return Continue, err
		}
		if cfg.Titles {
			if err := p.titleLine(p.header(p.page%2 == 0, p.page), cfg); err != nil {
				return Continue, err
			}
		}
		if err := p.blankLines(cfg.HeaderMargin); err != nil {
			return Continue, err
		}
		p.phase = phaseBody
		if p.skip > 0 {
			p.skip--
			if sig, err := p.Eject(cfg); sig == Stop || err != nil {
				return sig, err
			}
		}
	}
	return Continue, nil
}

// SetPage renumbers the page currently being assembled.
func (p *Paginator) SetPage(n int) {
	if n > 0 {
		p.page = n
		p.out.PageStart(n)
	}
}

// SetNextPage renumbers the page beginning at the next transition. A
// page that has not received output yet is renumbered in place.
func (p *Paginator) SetNextPage(n int) {
	if n <= 0 {
		return
	}
	if p.phase == phaseTop && p.vertical == 0 {
		p.SetPage(n)
		return
	}
	p.npn = n
}

// SetSkip schedules n blank pages at the next page transition.
func (p *Paginator) SetSkip(n int) {
	if n >= 0 {
		p.skip = n
	}
}

// SetLineNumber seeds the line numbering counter.
func (p *Paginator) SetLineNumber(n int) {
	if n > 0 {
		p.lnumber = n
	}
}

// numberField writes the line number column: optional extra indent
// and a three digit field. A pending suppression count blanks the
// number but keeps the column width.
func (p *Paginator) numberField(buf *bytes.Buffer, cfg *LayoutConfig) {
	pad(buf, cfg.NumberIndent)
	if cfg.NumberSkip > 0 {
		cfg.NumberSkip--
		pad(buf, 4)
		return
	}
	fmt.Fprintf(buf, "%3d ", p.lnumber)
	p.lnumber++
}

func (p *Paginator) titleLine(text string, cfg *LayoutConfig) error {
	if text == "" {
		return p.out.Emit([]byte{'\n'})
	}
	var buf bytes.Buffer
	pad(&buf, cfg.PageOffset)
	buf.WriteString(text)
	buf.WriteByte('\n')
	return p.out.Emit(buf.Bytes())
}

func (p *Paginator) header(even bool, page int) string {
	if p.titles == nil {
		return ""
	}
	return p.titles.Header(even, page)
}

func (p *Paginator) footer(even bool, page int) string {
	if p.titles == nil {
		return ""
	}
	return p.titles.Footer(even, page)
}

func (p *Paginator) blankLines(n int) error {
	for i := 0; i < n; i++ {
		if err := p.out.Emit([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
