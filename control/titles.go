package control

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/runoff"
)

// A TitleStore holds the four running titles as given in their
// requests and renders them on demand. It implements runoff.Titles.
//
// A title comes in three parts: the first character of the argument
// is the delimiter, then left, centered and right part. A `%` in any
// part prints as the page number in the active mode.
type TitleStore struct {
	cfg      *runoff.LayoutConfig
	evenHead string
	oddHead  string
	evenFoot string
	oddFoot  string
}

// NewTitleStore returns an empty store rendering at cfg's line length.
func NewTitleStore(cfg *runoff.LayoutConfig) *TitleStore {
	return &TitleStore{cfg: cfg}
}

// SetHeader sets the header for even and odd pages alike.
func (t *TitleStore) SetHeader(spec string) { t.evenHead, t.oddHead = spec, spec }

// SetFooter sets the footer for even and odd pages alike.
func (t *TitleStore) SetFooter(spec string) { t.evenFoot, t.oddFoot = spec, spec }

func (t *TitleStore) SetEvenHeader(spec string) { t.evenHead = spec }
func (t *TitleStore) SetOddHeader(spec string)  { t.oddHead = spec }
func (t *TitleStore) SetEvenFooter(spec string) { t.evenFoot = spec }
func (t *TitleStore) SetOddFooter(spec string)  { t.oddFoot = spec }

// Header implements runoff.Titles.
func (t *TitleStore) Header(even bool, page int) string {
	if even {
		return t.render(t.evenHead, page)
	}
	return t.render(t.oddHead, page)
}

// Footer implements runoff.Titles.
func (t *TitleStore) Footer(even bool, page int) string {
	if even {
		return t.render(t.evenFoot, page)
	}
	return t.render(t.oddFoot, page)
}

// render lays the three parts into a line of the configured length:
// left part flush left, center part centered, right part flush right.
// Later parts win where they overlap.
func (t *TitleStore) render(spec string, page int) string {
	if spec == "" {
		return ""
	}
	delim, size := utf8.DecodeRuneInString(spec)
	parts := strings.Split(spec[size:], string(delim))
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	num := PageNumber(page, t.cfg.RomanPages)
	for i := range parts[:3] {
		parts[i] = strings.ReplaceAll(parts[i], "%", num)
	}
	width := t.cfg.LineLength
	if width < 1 {
		width = 1
	}
	line := make([]byte, width)
	for i := range line {
		line[i] = ' '
	}
	copy(line, parts[0])
	if c := parts[1]; c != "" {
		at := (width - len(c)) / 2
		if at < 0 {
			at = 0
		}
		copy(line[at:], c)
	}
	if rt := parts[2]; rt != "" {
		at := width - len(rt)
		if at < 0 {
			at = 0
		}
		copy(line[at:], rt)
	}
	return strings.TrimRight(string(line), " ")
}
