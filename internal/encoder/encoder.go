// Package encoder converts ASCII hexadecimal digit streams into escaped
// binary string literals (\xHH sequences) in one of several target syntaxes,
// with optional line wrapping at a fixed byte width. Non-hexadecimal input
// characters are filtered out and counted rather than rejected, so the
// encoder never fails on malformed input.
package encoder

import (
	"math"
	"strings"
)

// markerEOF is skipped silently alongside newline and NUL. Raw file input
// can legitimately contain 0xFF bytes; they carry no hex digit information
// and must not inflate the invalid-character diagnostic.
const markerEOF = 0xFF

// Options controls a single encode invocation. It is passed by value; the
// encoder keeps no state between calls.
type Options struct {
	// Syntax selects the output decoration (plain, C or Python).
	Syntax Syntax

	// WidthBytes breaks the binary string every WidthBytes escaped bytes.
	// Zero disables wrapping.
	WidthBytes uint

	// Verbose emits the syntax-specific variable-declaration header line
	// before the string content.
	Verbose bool

	// Interactive starts the output with a blank line so the binary string
	// is visually separated from echoed terminal input.
	Interactive bool
}

// Encode scans digits left to right, pairs up hexadecimal digit characters
// into \xHH byte tokens and renders them in the requested syntax. It returns
// the rendered text and the number of invalid characters that were dropped.
//
// Only ASCII 0-9, A-F and a-f are treated as hex digits; digit case is
// preserved in the output. Newline, NUL and 0xFF bytes are skipped silently,
// every other non-hex character is skipped and counted. Wrap boundaries are
// evaluated at byte-pair starts only, so a wrap can never split a \xHH token,
// and the first pair never emits a boundary line break.
func Encode(digits []byte, opts Options) (string, int) {
	var b strings.Builder
	// Two digits become a four-character \xHH token; decoration is small.
	b.Grow(len(digits)*2 + 16)

	if opts.Interactive {
		b.WriteByte('\n')
	}
	if opts.Verbose {
		switch opts.Syntax {
		case SyntaxC:
			b.WriteString("unsigned char buffer[] =\n")
		case SyntaxPython:
			b.WriteString("buffer =  \"\"\n")
		}
	}

	// Widths too large for the digit-pair arithmetic behave as unbounded;
	// no input can reach that many pairs anyway.
	wrapInterval := 0
	if opts.WidthBytes != 0 && opts.WidthBytes <= math.MaxInt/2 {
		wrapInterval = int(opts.WidthBytes) * 2
	}

	digitIndex := 0
	invalid := 0
	for _, c := range digits {
		switch {
		case isHexDigit(c):
			if digitIndex%2 == 0 {
				if wrapInterval != 0 && digitIndex%wrapInterval == 0 {
					writeBoundary(&b, opts.Syntax, digitIndex != 0)
				}
				b.WriteString(`\x`)
				b.WriteByte(c)
			} else {
				b.WriteByte(c)
			}
			digitIndex++
		case c == markerEOF || c == '\n' || c == 0x00:
			// skipped, not an input error
		default:
			invalid++
		}
	}

	switch opts.Syntax {
	case SyntaxC, SyntaxPython:
		b.WriteByte('"')
	}
	b.WriteByte('\n')

	return b.String(), invalid
}

// writeBoundary closes the current literal and opens the next one. With
// midstream false (start of the first pair) only the opening decoration is
// emitted, which is what puts the leading quote on the first wrapped line.
func writeBoundary(b *strings.Builder, syntax Syntax, midstream bool) {
	switch syntax {
	case SyntaxC:
		if midstream {
			b.WriteString("\"\n")
		}
		b.WriteByte('"')
	case SyntaxPython:
		if midstream {
			b.WriteString("\"\n")
		}
		b.WriteString(`buffer += "`)
	default:
		if midstream {
			b.WriteByte('\n')
		}
	}
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'F') || ('a' <= c && c <= 'f')
}
