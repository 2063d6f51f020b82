package runoff

import "github.com/mattn/go-runewidth"

// MarkSource tells where a break-candidate mark on a unit came from.
type MarkSource uint8

const (
	NoMark MarkSource = iota
	MarkSuffix    // morphological suffix rule
	MarkDigram    // statistical digram score
	MarkException // exception dictionary entry
	MarkExplicit  // break character in the input
)

// A Unit is one input character plus its break-candidate mark. Width
// and class are derived on demand and never stored alongside.
type Unit struct {
	R    rune
	Mark MarkSource
}

// Width returns the display width of the unit: -1 for a backspace
// (overstrike sequences), 0 for other control characters, and the
// cell width otherwise.
func (u Unit) Width() int {
	if u.R == '\b' {
		return -1
	}
	if u.R < 0x20 || u.R == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(u.R)
}

// Space reports whether the unit is a blank.
func (u Unit) Space() bool { return u.R == ' ' }

// Alpha reports whether the unit is an ASCII letter. Only such units
// form a hyphenatable core; everything else counts as punctuation
// there.
func (u Unit) Alpha() bool {
	return (u.R >= 'a' && u.R <= 'z') || (u.R >= 'A' && u.R <= 'Z')
}

// Vowel reports whether the unit is one of a e i o u y, either case.
func (u Unit) Vowel() bool {
	switch u.Letter() {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Letter returns the unit lowercased as a byte, or 0 for a non-letter.
func (u Unit) Letter() byte {
	switch {
	case u.R >= 'a' && u.R <= 'z':
		return byte(u.R)
	case u.R >= 'A' && u.R <= 'Z':
		return byte(u.R) + 'a' - 'A'
	}
	return 0
}
