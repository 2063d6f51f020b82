package runoff

import "bytes"

// A Line is the output line being assembled. Width accounting covers
// word content only: inter-word gaps are not stored as units. The
// renderer emits gap spacing from the justification accumulators, a
// single space per gap when not adjusting. The invariant
// used + Remaining() == target holds between mutations.
type Line struct {
	units  []Unit
	starts []int // unit index of each word's first unit
	target int
	used   int

	adjusted      bool // justification accumulators are valid
	baseExtra     int
	leftoverExtra int

	raw  bool // pre-broken line, units verbatim, no gap handling
	lead int  // explicit leading pad for raw centered lines
}

// Reset empties the line and sets the width budget for its content.
func (ln *Line) Reset(target int) {
	ln.units = ln.units[:0]
	ln.starts = ln.starts[:0]
	ln.target = target
	ln.used = 0
	ln.adjusted = false
	ln.baseExtra = 0
	ln.leftoverExtra = 0
	ln.raw = false
	ln.lead = 0
}

// Len returns the number of units on the line.
func (ln *Line) Len() int { return len(ln.units) }

// Used returns the display width consumed by word content.
func (ln *Line) Used() int { return ln.used }

// Remaining returns the width budget left for content.
func (ln *Line) Remaining() int { return ln.target - ln.used }

// Words returns the number of words placed on the line.
func (ln *Line) Words() int { return len(ln.starts) }

// Empty reports whether nothing has been placed on the line.
func (ln *Line) Empty() bool { return len(ln.units) == 0 && !ln.raw }

// appendWord adds the units of one word, clearing their marks. The
// caller has already checked the fit.
func (ln *Line) appendWord(units []Unit, width int) {
	ln.starts = append(ln.starts, len(ln.units))
	for _, u := range units {
		if len(ln.units) >= maxLineUnits {
			break
		}
		u.Mark = NoMark
		ln.units = append(ln.units, u)
	}
	ln.used += width
}

// extendWord appends one more unit to the most recently placed word.
// The composer uses this for the hyphen glyph after a split.
func (ln *Line) extendWord(u Unit, width int) {
	if len(ln.units) >= maxLineUnits {
		return
	}
	u.Mark = NoMark
	ln.units = append(ln.units, u)
	ln.used += width
}

// appendRaw places a pre-broken input line verbatim, with an optional
// leading pad for centering.
func (ln *Line) appendRaw(units []Unit, width, lead int) {
	for _, u := range units {
		if len(ln.units) >= maxLineUnits {
			break
		}
		u.Mark = NoMark
		ln.units = append(ln.units, u)
	}
	ln.used += width
	ln.raw = true
	if lead > 0 {
		ln.lead = lead
	}
}

// gapSpaces returns the spaces for gap i of gaps when justifying.
// Even output lines front-load the leftover, odd lines back-load it;
// either way the spaces sum to exactly the stored remaining width.
func (ln *Line) gapSpaces(i, gaps int, even bool) int {
	n := ln.baseExtra
	if even {
		if i < ln.leftoverExtra {
			n++
		}
	} else {
		if i >= gaps-ln.leftoverExtra {
			n++
		}
	}
	return n
}

// renderInto writes the finished line content into buf: leading pad,
// words and gap spacing. The caller wraps it with page offset, number
// field and indent.
func (ln *Line) renderInto(buf *bytes.Buffer, mode AdjustMode, even bool) {
	if ln.raw {
		pad(buf, ln.lead)
		writeUnits(buf, ln.units)
		return
	}
	words := len(ln.starts)
	if words == 0 {
		return
	}
	gaps := words - 1
	switch mode {
	case AdjustRight:
		pad(buf, ln.Remaining()-gaps)
	case AdjustCenter:
		pad(buf, (ln.Remaining()-gaps)/2)
	}
	for i := 0; i < words; i++ {
		from := ln.starts[i]
		to := len(ln.units)
		if i+1 < words {
			to = ln.starts[i+1]
		}
		writeUnits(buf, ln.units[from:to])
		if i+1 < words {
			if mode == AdjustBoth && ln.adjusted {
				pad(buf, ln.gapSpaces(i, gaps, even))
			} else {
				pad(buf, 1)
			}
		}
	}
	// A one-word justified line carries its spacing after the word.
	if mode == AdjustBoth && ln.adjusted && words == 1 {
		pad(buf, ln.baseExtra+ln.leftoverExtra)
	}
}

func writeUnits(buf *bytes.Buffer, units []Unit) {
	for _, u := range units {
		buf.WriteRune(u.R)
	}
}

func pad(buf *bytes.Buffer, n int) {
	for i := 0; i < n; i++ {
		buf.WriteByte(' ')
	}
}
