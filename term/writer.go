// Package term writes formatted pages to a file or terminal. A Writer
// buffers output, drops pages outside a first/last window, and can
// pause between pages when a stop terminal is attached.
package term

import (
	"bufio"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	xterm "golang.org/x/term"
)

// tracer writes to trace with key 'runoff.term'.
func tracer() tracing.Trace {
	return tracing.Select("runoff.term")
}

// A Writer is the output end of the formatting pipeline. Pages are
// counted by PageStart; lines of pages outside the window [first,last]
// are discarded. A zero bound leaves that end of the window open.
type Writer struct {
	w     *bufio.Writer
	first int
	last  int
	page  int
	in    *os.File // pause terminal, nil means never pause
}

// NewWriter wraps w with page window [first,last]. Zero bounds keep
// every page.
func NewWriter(w io.Writer, first, last int) *Writer {
	return &Writer{
		w:     bufio.NewWriter(w),
		first: first,
		last:  last,
		page:  1,
	}
}

// EnableStop makes Pause wait for a newline on in, provided in is an
// interactive terminal when the pause happens.
func (t *Writer) EnableStop(in *os.File) {
	t.in = in
}

// PageStart marks the begin of page n in the output stream.
func (t *Writer) PageStart(n int) {
	t.page = n
	if !t.printing() {
		tracer().Debugf("page %d outside window [%d,%d], discarding", n, t.first, t.last)
	}
}

// Emit writes one line, or drops it when the current page is outside
// the window.
func (t *Writer) Emit(p []byte) error {
	if !t.printing() {
		return nil
	}
	_, err := t.w.Write(p)
	return err
}

// Flush pushes buffered output to the underlying writer.
func (t *Writer) Flush() error {
	return t.w.Flush()
}

// Pause flushes, then blocks until a newline arrives on the stop
// terminal. Without a stop terminal, or when it is not interactive,
// Pause only flushes.
func (t *Writer) Pause() error {
	if err := t.w.Flush(); err != nil {
		return err
	}
	if t.in == nil || !xterm.IsTerminal(int(t.in.Fd())) {
		return nil
	}
	tracer().Debugf("pausing before page %d", t.page)
	buf := make([]byte, 1)
	for {
		n, err := t.in.Read(buf)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if n > 0 && (buf[0] == '\n' || buf[0] == '\r') {
			return nil
		}
	}
}

func (t *Writer) printing() bool {
	if t.first > 0 && t.page < t.first {
		return false
	}
	if t.last > 0 && t.page > t.last {
		return false
	}
	return true
}
