package control

import (
	"strings"

	"github.com/npillmayer/runoff"
)

// request interprets one request line, already stripped of the
// control character. The name is the first two characters; everything
// after, trimmed, is the argument. Unknown names are dropped.
func (r *Reader) request(runes []rune) {
	if len(runes) < 2 {
		return
	}
	name := string(runes[:2])
	arg := strings.TrimSpace(string(runes[2:]))
	cfg := r.cfg
	switch name {

	case "ad":
		switch arg {
		case "l":
			cfg.Adjust = runoff.AdjustLeft
		case "r":
			cfg.Adjust = runoff.AdjustRight
		case "c":
			cfg.Adjust = runoff.AdjustCenter
		default:
			cfg.Adjust = runoff.AdjustBoth
		}
	case "na":
		cfg.Adjust = runoff.AdjustLeft

	case "br":
		r.pushBreak()
	case "fi":
		r.pushBreak()
		cfg.Fill = true
	case "nf":
		r.pushBreak()
		cfg.Fill = false
	case "ce":
		r.pushBreak()
		r.center = max(number(arg, r.center, 1), 0)
	case "ul":
		r.underline = max(number(arg, r.underline, 1), 0)

	case "ll":
		cfg.LineLength = max(number(arg, cfg.LineLength, 65), 1)
	case "in":
		r.pushBreak()
		cfg.Indent = max(number(arg, cfg.Indent, 0), 0)
	case "ti":
		r.pushBreak()
		cfg.TempIndent = max(number(arg, cfg.Indent, 0), 0)
	case "ix":
		cfg.Indent = max(number(arg, cfg.Indent, 0), 0)
	case "po":
		cfg.PageOffset = max(number(arg, cfg.PageOffset, 0), 0)

	case "ls":
		cfg.LineSpacing = max(number(arg, cfg.LineSpacing, 1), 1)
	case "ss":
		cfg.LineSpacing = 1
	case "ds":
		cfg.LineSpacing = 2

	case "sp", "bl":
		r.pushBreak()
		r.push(runoff.Token{Kind: runoff.TokenBlank, N: max(number(arg, 1, 1), 0)}, nil)
	case "ne":
		r.push(runoff.Token{Kind: runoff.TokenNeed, N: max(number(arg, 1, 1), 0)}, nil)
	case "pa", "bp":
		r.pushBreak()
		if arg != "" && r.pager != nil {
			r.pager.SetNextPage(number(arg, r.pager.Page(), 0))
		}
		r.push(runoff.Token{Kind: runoff.TokenEject}, nil)
	case "pn":
		if r.pager != nil {
			r.pager.SetNextPage(number(arg, r.pager.Page(), 0))
		}
	case "sk":
		if r.pager != nil {
			r.pager.SetSkip(max(number(arg, 1, 1), 0))
		}

	case "pl":
		cfg.PageLength = number(arg, cfg.PageLength, 66)
		r.recompute()
	case "m1":
		cfg.TopMargin = max(number(arg, cfg.TopMargin, 2), 0)
		r.recompute()
	case "m2":
		cfg.HeaderMargin = max(number(arg, cfg.HeaderMargin, 2), 0)
		r.recompute()
	case "m3":
		cfg.FooterMargin = max(number(arg, cfg.FooterMargin, 1), 0)
		r.recompute()
	case "m4":
		cfg.BottomMargin = max(number(arg, cfg.BottomMargin, 3), 0)
		r.recompute()
	case "hx":
		cfg.Titles = false
		r.recompute()

	case "he":
		r.titles.SetHeader(arg)
		r.titlesOn()
	case "fo":
		r.titles.SetFooter(arg)
		r.titlesOn()
	case "eh":
		r.titles.SetEvenHeader(arg)
		r.titlesOn()
	case "oh":
		r.titles.SetOddHeader(arg)
		r.titlesOn()
	case "ef":
		r.titles.SetEvenFooter(arg)
		r.titlesOn()
	case "of":
		r.titles.SetOddFooter(arg)
		r.titlesOn()

	case "hc":
		cfg.BreakChar = firstRune(arg)
	case "hy":
		switch n := max(number(arg, 1, 1), 0); {
		case n == 0:
			cfg.Hyphenate = false
		case n == 1:
			cfg.Hyphenate = true
		default:
			cfg.Hyphenate = true
			cfg.HyphenThreshold = n
		}
	case "hw":
		if r.hyph == nil {
			return
		}
		for _, word := range strings.Fields(arg) {
			if err := r.hyph.AddException(word); err != nil {
				tracer().Errorf("request .hw line %d: %v", r.lineno, err)
			}
		}

	case "ro":
		cfg.RomanPages = true
	case "ar":
		cfg.RomanPages = false

	case "n1":
		cfg.Numbering = runoff.NumberPage
		if r.pager != nil {
			r.pager.SetLineNumber(1)
		}
	case "n2":
		n := max(number(arg, 1, 1), 0)
		if n == 0 {
			cfg.Numbering = runoff.NumberOff
			return
		}
		cfg.Numbering = runoff.NumberRun
		if r.pager != nil {
			r.pager.SetLineNumber(n)
		}
	case "ni":
		cfg.NumberIndent = max(number(arg, cfg.NumberIndent, 0), 0)
	case "nn":
		cfg.NumberSkip = max(number(arg, 1, 1), 0)

	case "ta":
		r.tabStops = parseTabStops(arg)
	case "cc":
		if c := firstRune(arg); c != 0 {
			r.ctl = c
		} else {
			r.ctl = defaultControlChar
		}

	default:
		tracer().Debugf("unknown request .%s ignored at line %d", name, r.lineno)
	}
}

func (r *Reader) recompute() {
	if r.pager != nil {
		r.pager.RecomputeBottom(r.cfg)
	}
}

// titlesOn re-enables the title block a `.hx` switched off. Setting
// any title means the caller wants them printed again.
func (r *Reader) titlesOn() {
	if !r.cfg.Titles {
		r.cfg.Titles = true
		r.recompute()
	}
}

// number parses a request argument the historical way: a leading sign
// makes the value relative to cur, a bare number is absolute, and
// scanning stops at the first non-digit. A missing or unusable
// argument yields def.
func number(arg string, cur, def int) int {
	if arg == "" {
		return def
	}
	sign := 0
	switch arg[0] {
	case '+':
		sign = 1
		arg = arg[1:]
	case '-':
		sign = -1
		arg = arg[1:]
	}
	n, any := 0, false
	for _, c := range arg {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		any = true
	}
	if !any {
		return def
	}
	switch sign {
	case 1:
		return cur + n
	case -1:
		return cur - n
	}
	return n
}
