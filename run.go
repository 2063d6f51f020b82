package runoff

// TokenKind classifies what the upstream reader produced.
type TokenKind uint8

const (
	TokenEOF   TokenKind = iota
	TokenWord            // one word, in the Word buffer
	TokenLine            // a pre-broken line, in the Word buffer
	TokenBreak           // flush the partial line
	TokenBlank           // N empty content lines
	TokenNeed            // demand N lines on the current page
	TokenEject           // force a page transition
)

// Token is one unit of upstream feed.
type Token struct {
	Kind     TokenKind
	N        int  // count for TokenBlank and TokenNeed
	Centered bool // for TokenLine
}

// Source feeds the composition pipeline. Next fills w when it returns
// TokenWord or TokenLine; for other kinds w is left alone.
type Source interface {
	Next(w *Word) (Token, error)
}

// Titles supplies the running page titles by page parity.
type Titles interface {
	Header(even bool, page int) string
	Footer(even bool, page int) string
}

// Output is the buffered writer finished output goes through. The
// paginator announces page boundaries so the writer can restrict
// itself to a page window, and Pause blocks between pages when stop
// mode is on.
type Output interface {
	Emit(p []byte) error
	Flush() error
	PageStart(n int)
	Pause() error
}

// A Runner wires source, composer and paginator into the synchronous
// pipeline: one word is fully placed before the next is read.
type Runner struct {
	src   Source
	out   Output
	comp  *Composer
	pager *Paginator
	cfg   *LayoutConfig

	line   Line
	word   Word
	indent int
}

// NewRunner assembles the pipeline around an already wired paginator.
func NewRunner(src Source, out Output, pager *Paginator, comp *Composer, cfg *LayoutConfig) *Runner {
	r := &Runner{src: src, out: out, pager: pager, comp: comp, cfg: cfg}
	r.startLine()
	return r
}

// Run consumes the source until it is exhausted or a page bound ends
// the output. The final partial line is flushed and the last page is
// closed out.
func (r *Runner) Run() error {
	for {
		tok, err := r.src.Next(&r.word)
		if err != nil {
			return err
		}
		var sig Signal
		switch tok.Kind {
		case TokenWord:
			sig, err = r.placeWord()
		case TokenLine:
			sig, err = r.copyLine(tok.Centered)
		case TokenBreak:
			sig, err = r.breakLine()
		case TokenBlank:
			sig, err = r.breakLine()
			for i := 0; i < tok.N && sig == Continue && err == nil; i++ {
				sig, err = r.pager.Blank(r.cfg)
			}
		case TokenNeed:
			sig, err = r.pager.Need(tok.N, r.cfg)
		case TokenEject:
			sig, err = r.breakLine()
			if sig == Continue && err == nil {
				sig, err = r.pager.Eject(r.cfg)
			}
		case TokenEOF:
			if sig, err = r.breakLine(); err != nil || sig == Stop {
				return err
			}
			if _, err = r.pager.Eject(r.cfg); err != nil {
				return err
			}
			return r.out.Flush()
		}
		if err != nil {
			return err
		}
		if sig == Stop {
			return nil
		}
	}
}

// placeWord moves the pending word onto the line, flushing adjusted
// lines as they fill up until the word is consumed.
func (r *Runner) placeWord() (Signal, error) {
	for {
		fit := r.comp.MoveWord(&r.word, &r.line, r.cfg, &r.pager.PageState)
		if fit == Fits && r.word.Empty() {
			return Continue, nil
		}
		// Either a hyphenated head was placed or nothing fit; the
		// line is done and the remainder goes on the next one.
		r.comp.Adjust(&r.line, r.cfg)
		if sig, err := r.flushLine(); sig == Stop || err != nil {
			return sig, err
		}
	}
}

// copyLine emits the pending buffer as one verbatim line.
func (r *Runner) copyLine(centered bool) (Signal, error) {
	if sig, err := r.breakLine(); sig == Stop || err != nil {
		return sig, err
	}
	r.comp.CopyLine(r.word.units, &r.line, centered)
	r.word.Reset()
	return r.flushLine()
}

// breakLine flushes the partial line without justification. On an
// empty line it only restarts the line so geometry changes take hold.
func (r *Runner) breakLine() (Signal, error) {
	if r.line.Empty() {
		r.startLine()
		return Continue, nil
	}
	return r.flushLine()
}

// flushLine hands the line to the paginator and opens the next one.
// A temporary indent has been used up once a line went out.
func (r *Runner) flushLine() (Signal, error) {
	sig, err := r.pager.FinishLine(&r.line, r.indent, r.cfg)
	r.cfg.TempIndent = -1
	r.startLine()
	return sig, err
}

// startLine opens a fresh line with the current indent.
func (r *Runner) startLine() {
	r.indent = r.cfg.TextIndent()
	r.line.Reset(r.cfg.TextWidth(r.indent))
}
