package encoder

// Syntax selects the decoration applied to the rendered binary string:
// the literal quoting, the line-continuation token emitted at wrap
// boundaries, and the variable-declaration header used in verbose mode.
type Syntax int

const (
	// SyntaxPlain renders bare \xHH tokens with no quoting.
	SyntaxPlain Syntax = iota
	// SyntaxC renders double-quoted string literals suitable for a C
	// unsigned char buffer initializer.
	SyntaxC
	// SyntaxPython renders double-quoted string literals accumulated into a
	// Python variable with +=.
	SyntaxPython
)

// ParseSyntax maps a command-line syntax name to a Syntax. Only the exact
// names "c" and "python" select a decorated syntax; anything else, including
// the empty string, falls back to plain output.
func ParseSyntax(name string) Syntax {
	switch name {
	case "c":
		return SyntaxC
	case "python":
		return SyntaxPython
	default:
		return SyntaxPlain
	}
}

// String returns the command-line name of the syntax.
func (s Syntax) String() string {
	switch s {
	case SyntaxC:
		return "c"
	case SyntaxPython:
		return "python"
	default:
		return "plain"
	}
}
