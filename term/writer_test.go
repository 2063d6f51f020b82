package term_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/npillmayer/runoff/term"
	"github.com/stretchr/testify/require"
)

func emitPages(t *testing.T, w *term.Writer, pages ...int) {
	t.Helper()
	for _, n := range pages {
		w.PageStart(n)
		require.NoError(t, w.Emit([]byte(fmt.Sprintf("page %d line a\n", n))))
		require.NoError(t, w.Emit([]byte(fmt.Sprintf("page %d line b\n", n))))
	}
	require.NoError(t, w.Flush())
}

func TestPageWindow(t *testing.T) {
	var buf bytes.Buffer
	w := term.NewWriter(&buf, 2, 3)
	emitPages(t, w, 1, 2, 3, 4)
	want := "page 2 line a\npage 2 line b\npage 3 line a\npage 3 line b\n"
	require.Equal(t, want, buf.String())
}

func TestOpenWindow(t *testing.T) {
	var buf bytes.Buffer
	w := term.NewWriter(&buf, 0, 0)
	emitPages(t, w, 1, 2)
	want := "page 1 line a\npage 1 line b\npage 2 line a\npage 2 line b\n"
	require.Equal(t, want, buf.String())
}

func TestHalfOpenWindows(t *testing.T) {
	var buf bytes.Buffer
	w := term.NewWriter(&buf, 3, 0)
	emitPages(t, w, 1, 2, 3)
	require.Equal(t, "page 3 line a\npage 3 line b\n", buf.String())

	buf.Reset()
	w = term.NewWriter(&buf, 0, 1)
	emitPages(t, w, 1, 2, 3)
	require.Equal(t, "page 1 line a\npage 1 line b\n", buf.String())
}

func TestPauseFlushes(t *testing.T) {
	var buf bytes.Buffer
	w := term.NewWriter(&buf, 0, 0)
	require.NoError(t, w.Emit([]byte("pending\n")))
	require.Zero(t, buf.Len())
	require.NoError(t, w.Pause())
	require.Equal(t, "pending\n", buf.String())
}

func TestPauseIgnoresNonTerminal(t *testing.T) {
	in, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer in.Close()

	var buf bytes.Buffer
	w := term.NewWriter(&buf, 0, 0)
	w.EnableStop(in)
	require.NoError(t, w.Pause())
	require.NoError(t, w.Emit([]byte("after\n")))
	require.NoError(t, w.Flush())
	require.Equal(t, "after\n", buf.String())
}
