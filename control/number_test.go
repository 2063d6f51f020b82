package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/runoff/control"
)

func TestRomanNumerals(t *testing.T) {
	cases := map[int]string{
		1:    "i",
		2:    "ii",
		4:    "iv",
		9:    "ix",
		14:   "xiv",
		40:   "xl",
		90:   "xc",
		400:  "cd",
		1969: "mcmlxix",
		3999: "mmmcmxcix",
	}
	for n, want := range cases {
		assert.Equal(t, want, control.Roman(n), "roman %d", n)
	}
}

func TestPageNumberModes(t *testing.T) {
	assert.Equal(t, "12", control.PageNumber(12, false))
	assert.Equal(t, "xii", control.PageNumber(12, true))
	assert.Equal(t, "0", control.Roman(0), "no roman zero")
}
