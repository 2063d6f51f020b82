package runoff

// AdjustMode selects how finished lines are padded.
type AdjustMode uint8

const (
	AdjustLeft   AdjustMode = iota // ragged right, single spaces
	AdjustRight                    // pad on the left
	AdjustCenter                   // pad half on the left
	AdjustBoth                     // spread spacing across the gaps
)

// NumberMode selects line numbering in the left margin.
type NumberMode uint8

const (
	NumberOff  NumberMode = iota
	NumberPage            // restart at 1 on every page
	NumberRun             // continuous through the run
)

// LayoutConfig carries the layout parameters owned by the command
// layer. The core reads it at word and line boundaries; requests may
// mutate it between calls but never mid-word. TempIndent applies to
// one output line and is reset to -1 when consumed; NumberSkip is
// decremented as suppressed line numbers go by.
type LayoutConfig struct {
	LineLength int
	PageLength int // 0 or negative disables pagination

	TopMargin    int // blank lines above the header
	HeaderMargin int // blank lines between header and first text line
	FooterMargin int // blank lines between last text line and footer
	BottomMargin int // blank lines below the footer

	Fill        bool
	Adjust      AdjustMode
	Indent      int
	TempIndent  int // -1 when unset
	LineSpacing int
	PageOffset  int

	Titles bool // emit header and footer lines

	Hyphenate       bool
	HyphenThreshold int
	BreakChar       rune // explicit break character, 0 when unset

	Numbering    NumberMode
	NumberIndent int
	NumberSkip   int

	RomanPages bool
	FirstPage  int
	LastPage   int
	StopMode   bool
}

// Defaults returns the historical layout of the line-printer tools:
// 65-character lines on 66-line pages, justified fill, hyphenation on.
func Defaults() LayoutConfig {
	return LayoutConfig{
		LineLength:      65,
		PageLength:      66,
		TopMargin:       2,
		HeaderMargin:    2,
		FooterMargin:    1,
		BottomMargin:    3,
		Fill:            true,
		Adjust:          AdjustBoth,
		TempIndent:      -1,
		LineSpacing:     1,
		Titles:          true,
		Hyphenate:       true,
		HyphenThreshold: 240,
		FirstPage:       1,
		LastPage:        9999,
	}
}

// TextIndent returns the indent for the next output line. A pending
// temporary indent takes precedence until a line is emitted; the
// driver clears it then.
func (cfg *LayoutConfig) TextIndent() int {
	if cfg.TempIndent >= 0 {
		return cfg.TempIndent
	}
	return cfg.Indent
}

// TextWidth returns the content width budget for a line at the given
// indent.
func (cfg *LayoutConfig) TextWidth(indent int) int {
	w := cfg.LineLength - indent
	if w < 1 {
		w = 1
	}
	return w
}
