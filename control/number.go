package control

import (
	"strconv"
	"strings"
)

// PageNumber renders a page number in the active mode.
func PageNumber(n int, roman bool) string {
	if roman {
		return Roman(n)
	}
	return strconv.Itoa(n)
}

var romanDigits = []struct {
	value int
	text  string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// Roman renders n in the lowercase roman numerals the historical
// formatter used for front matter. Values below one fall back to
// arabic.
func Roman(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			sb.WriteString(d.text)
			n -= d.value
		}
	}
	return sb.String()
}
