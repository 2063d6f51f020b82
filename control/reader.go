/*
Package control is the request layer of the formatter: it tokenizes
request-laced input into the composition core's token stream and
applies two-letter layout requests to the live configuration, the
paginator and the title store. It implements runoff.Source.
*/
package control

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/runoff"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'runoff.control'
func tracer() tracing.Trace {
	return tracing.Select("runoff.control")
}

// defaultControlChar introduces request lines.
const defaultControlChar = '.'

// pending is one queued token plus the word or line units going with
// it.
type pending struct {
	tok   runoff.Token
	units []runoff.Unit
}

// A Reader feeds the composition pipeline from formatter input. Text
// lines become word or verbatim-line tokens; request lines take
// effect immediately, before the next token is handed out.
type Reader struct {
	sc     *bufio.Scanner
	cfg    *runoff.LayoutConfig
	pager  *runoff.Paginator
	hyph   *runoff.Hyphenator
	titles *TitleStore

	ctl       rune
	tabStops  []int // explicit stops, zero-based; empty means every 8
	center    int   // input lines still to be centered
	underline int   // input lines still to be underlined

	queue  []pending
	lineno int
	done   bool
}

// NewReader returns a reader tokenizing in. Requests mutate cfg in
// place; hyph receives `.hw` exception words and may be nil.
func NewReader(in io.Reader, cfg *runoff.LayoutConfig, hyph *runoff.Hyphenator) *Reader {
	return &Reader{
		sc:     bufio.NewScanner(in),
		cfg:    cfg,
		hyph:   hyph,
		titles: NewTitleStore(cfg),
		ctl:    defaultControlChar,
	}
}

// Titles returns the title store the page requests write into. Hand
// it to the paginator.
func (r *Reader) Titles() *TitleStore { return r.titles }

// BindPaginator connects the paginator that page-geometry and
// numbering requests act on. Until it is bound those requests are
// dropped.
func (r *Reader) BindPaginator(p *runoff.Paginator) { r.pager = p }

// Next implements runoff.Source.
func (r *Reader) Next(w *runoff.Word) (runoff.Token, error) {
	for len(r.queue) == 0 {
		if r.done {
			return runoff.Token{Kind: runoff.TokenEOF}, nil
		}
		if err := r.advance(); err != nil {
			return runoff.Token{}, err
		}
	}
	p := r.queue[0]
	r.queue = r.queue[1:]
	if p.tok.Kind == runoff.TokenWord || p.tok.Kind == runoff.TokenLine {
		w.Reset()
		for _, u := range p.units {
			w.AppendMarked(u.R, u.Mark)
		}
	}
	return p.tok, nil
}

// advance consumes one input line. Request lines usually queue no
// tokens, so callers loop.
func (r *Reader) advance() error {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return fmt.Errorf("runoff: reading input line %d: %w", r.lineno, err)
		}
		r.done = true
		return nil
	}
	r.lineno++
	runes := []rune(r.sc.Text())
	if len(runes) > 0 && runes[0] == r.ctl {
		r.request(runes[1:])
		return nil
	}
	r.textLine(runes)
	return nil
}

func (r *Reader) push(tok runoff.Token, units []runoff.Unit) {
	r.queue = append(r.queue, pending{tok: tok, units: units})
}

func (r *Reader) pushBreak() {
	r.push(runoff.Token{Kind: runoff.TokenBreak}, nil)
}

// textLine turns one input text line into tokens. A blank line breaks
// and leaves one empty line; leading blanks break and indent the line
// they start.
func (r *Reader) textLine(runes []rune) {
	runes = r.expandTabs(runes)
	if allBlank(runes) {
		r.pushBreak()
		r.push(runoff.Token{Kind: runoff.TokenBlank, N: 1}, nil)
		return
	}
	if r.underline > 0 {
		r.underline--
		runes = underline(runes)
	}
	if r.center > 0 {
		r.center--
		r.push(runoff.Token{Kind: runoff.TokenLine, Centered: true}, r.lineUnits(runes))
		return
	}
	if !r.cfg.Fill {
		r.push(runoff.Token{Kind: runoff.TokenLine}, r.lineUnits(runes))
		return
	}
	for len(runes) > 0 && runes[len(runes)-1] == ' ' {
		runes = runes[:len(runes)-1]
	}
	if lead := countLeading(runes, ' '); lead > 0 {
		r.pushBreak()
		r.cfg.TempIndent = r.cfg.TextIndent() + lead
		runes = runes[lead:]
	}
	for _, units := range r.splitWords(runes) {
		r.push(runoff.Token{Kind: runoff.TokenWord}, units)
	}
}

// splitWords cuts a line into words. One blank separates; any further
// blanks stay attached to the front of the following word, so
// deliberate wide spacing survives filling. The explicit break
// character is stripped and marks the unit after it.
func (r *Reader) splitWords(runes []rune) [][]runoff.Unit {
	var words [][]runoff.Unit
	var cur []runoff.Unit
	mark := runoff.NoMark
	flush := func() {
		if len(cur) > 0 {
			words = append(words, cur)
			cur = nil
		}
		mark = runoff.NoMark
	}
	for i := 0; i < len(runes); {
		switch c := runes[i]; {
		case c == ' ':
			flush()
			i++
			for i < len(runes) && runes[i] == ' ' {
				cur = append(cur, runoff.Unit{R: ' '})
				i++
			}
		case r.cfg.BreakChar != 0 && c == r.cfg.BreakChar:
			mark = runoff.MarkExplicit
			i++
		default:
			cur = append(cur, runoff.Unit{R: c, Mark: mark})
			mark = runoff.NoMark
			i++
		}
	}
	flush()
	return words
}

// lineUnits converts a verbatim line, stripping only the explicit
// break character.
func (r *Reader) lineUnits(runes []rune) []runoff.Unit {
	units := make([]runoff.Unit, 0, len(runes))
	for _, c := range runes {
		if r.cfg.BreakChar != 0 && c == r.cfg.BreakChar {
			continue
		}
		units = append(units, runoff.Unit{R: c})
	}
	return units
}

// expandTabs replaces tabs with blanks out to the next stop. Without
// explicit stops they sit every 8 columns; past the last explicit
// stop a tab degrades to a single blank.
func (r *Reader) expandTabs(runes []rune) []rune {
	hasTab := false
	for _, c := range runes {
		if c == '\t' {
			hasTab = true
			break
		}
	}
	if !hasTab {
		return runes
	}
	out := make([]rune, 0, len(runes)+8)
	for _, c := range runes {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		stop := r.nextStop(len(out))
		for len(out) < stop {
			out = append(out, ' ')
		}
	}
	return out
}

func (r *Reader) nextStop(col int) int {
	if len(r.tabStops) == 0 {
		return (col/8 + 1) * 8
	}
	for _, s := range r.tabStops {
		if s > col {
			return s
		}
	}
	return col + 1
}

// underline wraps letters and digits in the backspace overstrike the
// line printer renders as underlining. Word widths stay unchanged.
func underline(runes []rune) []rune {
	out := make([]rune, 0, len(runes)*3)
	for _, c := range runes {
		if isAlnum(c) {
			out = append(out, '_', '\b')
		}
		out = append(out, c)
	}
	return out
}

func isAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func allBlank(runes []rune) bool {
	for _, c := range runes {
		if c != ' ' {
			return false
		}
	}
	return true
}

func countLeading(runes []rune, c rune) int {
	n := 0
	for n < len(runes) && runes[n] == c {
		n++
	}
	return n
}

func firstRune(s string) rune {
	for _, c := range s {
		return c
	}
	return 0
}

// parseTabStops reads a `.ta` argument list of one-based columns.
func parseTabStops(arg string) []int {
	var stops []int
	for _, f := range strings.Fields(arg) {
		if n := number(f, 0, 0); n > 1 {
			stops = append(stops, n-1)
		}
	}
	sort.Ints(stops)
	return stops
}
