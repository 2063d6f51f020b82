package runoff

import "strings"

// Buffer capacities of the historical implementations. Input beyond a
// cap is dropped, never an error.
const (
	maxWordUnits = 200
	maxLineUnits = 500
)

// A Word accumulates the character units of the word currently being
// read. Break-candidate marks live on the units; they are cleared when
// units move onto a line.
type Word struct {
	units []Unit
	width int
}

// Append adds one character to the word. Characters beyond the buffer
// capacity are dropped.
func (w *Word) Append(r rune) {
	w.AppendMarked(r, NoMark)
}

// AppendMarked adds one character carrying a break-candidate mark.
// The tokenizer uses this for explicit break characters.
func (w *Word) AppendMarked(r rune, m MarkSource) {
	if len(w.units) >= maxWordUnits {
		return
	}
	u := Unit{R: r, Mark: m}
	w.units = append(w.units, u)
	w.width += u.Width()
}

// Len returns the number of units in the word.
func (w *Word) Len() int { return len(w.units) }

// Width returns the running display width of the word.
func (w *Word) Width() int { return w.width }

// Empty reports whether the word holds no units.
func (w *Word) Empty() bool { return len(w.units) == 0 }

// Reset empties the word for reuse.
func (w *Word) Reset() {
	w.units = w.units[:0]
	w.width = 0
}

// String renders the word's characters, ignoring marks.
func (w *Word) String() string {
	var sb strings.Builder
	for _, u := range w.units {
		sb.WriteRune(u.R)
	}
	return sb.String()
}

// stripLeadingSpaces drops blank units from the front of the word.
func (w *Word) stripLeadingSpaces() {
	n := 0
	for n < len(w.units) && w.units[n].Space() {
		n++
	}
	if n > 0 {
		w.dropFront(n)
	}
}

// dropFront removes the first n units, keeping the width sum in step.
func (w *Word) dropFront(n int) {
	assert(n >= 0 && n <= len(w.units), "dropFront out of range")
	for i := 0; i < n; i++ {
		w.width -= w.units[i].Width()
	}
	w.units = append(w.units[:0], w.units[n:]...)
}

// clearMarks wipes all break-candidate marks.
func (w *Word) clearMarks() {
	for i := range w.units {
		w.units[i].Mark = NoMark
	}
}

// Marked reports whether any unit carries a break-candidate mark.
func (w *Word) Marked() bool {
	for _, u := range w.units {
		if u.Mark != NoMark {
			return true
		}
	}
	return false
}
