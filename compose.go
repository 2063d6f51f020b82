package runoff

// Fit is the outcome of placing a word on a line.
type Fit int

const (
	// Fits means the whole word, or a hyphenated head of it, landed on
	// the line.
	Fits Fit = iota
	// Overflowed means nothing was consumed; the caller flushes the
	// line and retries.
	Overflowed
)

// Narrower free width than this is not worth a hyphenation attempt.
const minHyphenRoom = 4

// A Composer fits words onto lines and computes justification
// spacing. It owns the hyphenator so that fitting can ask for break
// candidates on demand.
type Composer struct {
	hyph *Hyphenator
}

// NewComposer returns a composer breaking words with h. A nil h
// disables hyphenation regardless of configuration.
func NewComposer(h *Hyphenator) *Composer {
	return &Composer{hyph: h}
}

// MoveWord transfers w onto ln, whole if it fits, else split at the
// best break candidate. The word is consumed as far as it was placed;
// on Overflowed it is untouched. Fitting reserves one width unit per
// inter-word gap, so a finished line always renders within its
// target even before justification.
func (c *Composer) MoveWord(w *Word, ln *Line, cfg *LayoutConfig, pg *PageState) Fit {
	if ln.Empty() {
		w.stripLeadingSpaces()
	}
	if w.Empty() {
		return Fits
	}
	avail := ln.Remaining() - ln.Words()
	if w.Width() <= avail {
		ln.appendWord(w.units, w.Width())
		w.Reset()
		return Fits
	}
	if c.hyphenEligible(avail, cfg, pg) && !w.Marked() {
		c.hyph.Hyphenate(w, cfg.HyphenThreshold)
	}
	hyphenW := Unit{R: '-'}.Width()
	width, split := 0, -1
	for i, u := range w.units {
		if i > 0 && u.Mark != NoMark && width+hyphenW <= avail {
			split = i
		}
		width += u.Width()
	}
	if split > 0 {
		hw := 0
		for _, u := range w.units[:split] {
			hw += u.Width()
		}
		ln.appendWord(w.units[:split], hw)
		ln.extendWord(Unit{R: '-'}, hyphenW)
		w.dropFront(split)
		tracer().Debugf("hyphenated after %d units, %d left", split, w.Len())
		return Fits
	}
	if ln.Words() == 0 {
		// Nothing broke and the line is bare. Force as many units as
		// fit so processing always advances; the rest waits for the
		// next line.
		cut, cw := 0, 0
		for i, u := range w.units {
			uw := u.Width()
			if i > 0 && cw+uw > avail {
				break
			}
			cw += uw
			cut = i + 1
		}
		ln.appendWord(w.units[:cut], cw)
		w.dropFront(cut)
		return Fits
	}
	return Overflowed
}

// hyphenEligible applies the width and page-position gates on
// breaking a word. Near the page bottom hyphenation is suppressed so
// no page ends in a hyphen.
func (c *Composer) hyphenEligible(avail int, cfg *LayoutConfig, pg *PageState) bool {
	if c.hyph == nil || !cfg.Hyphenate || avail <= minHyphenRoom {
		return false
	}
	if pg == nil {
		return true
	}
	room := pg.Room()
	return room > cfg.LineSpacing && room >= 2*cfg.LineSpacing
}

// Adjust computes the justification accumulators for a line flushed
// because a word no longer fit. Lines flushed by explicit breaks skip
// this and render with single-space gaps.
func (c *Composer) Adjust(ln *Line, cfg *LayoutConfig) {
	if cfg.Adjust == AdjustLeft || ln.raw || ln.Words() == 0 {
		return
	}
	gaps := ln.Words() - 1
	if gaps < 1 {
		gaps = 1
	}
	ln.baseExtra = ln.Remaining() / gaps
	ln.leftoverExtra = ln.Remaining() % gaps
	ln.adjusted = true
}

// CopyLine places a pre-broken input line on ln verbatim, as copy
// mode does for every line. Centered lines get a leading pad of half
// the free width.
func (c *Composer) CopyLine(units []Unit, ln *Line, centered bool) {
	width := 0
	for _, u := range units {
		width += u.Width()
	}
	lead := 0
	if centered {
		if lead = (ln.Remaining() - width) / 2; lead < 0 {
			lead = 0
		}
	}
	ln.appendRaw(units, width, lead)
}
