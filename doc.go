/*
Package runoff is the composition core of a line-printer-era text
formatter. It turns a stream of words and break events into justified,
paginated output lines.

Two subsystems carry the weight: the hyphenation engine, which finds
legal break points in a word from morphological suffix rules and the
statistical digram tables in package hytab, and the line/page engine,
which fits words onto lines, breaks them on overflow, distributes
justification spacing with a parity tie-break, and advances the page
through headers, footers and ejects.

The core owns no I/O. Words arrive through a Source, header and footer
text comes from a Titles store, and finished characters leave through
an Output writer; package control and package term provide the stock
implementations, and cmd/runoff wires them into a command-line tool.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package runoff

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'runoff'
func tracer() tracing.Trace {
	return tracing.Select("runoff")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
