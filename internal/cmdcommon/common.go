// Package cmdcommon provides shared metadata for the bstrings command-line
// tools.
package cmdcommon

import (
	"fmt"
	"io"
)

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// PrintVersion writes the version banner to w.
func PrintVersion(w io.Writer, programName string) {
	fmt.Fprintf(w, "Binary String Toolkit (%s)\n", Version)
	if GitCommit != "" {
		fmt.Fprintf(w, "Git Build %s\n", GitCommit)
	}
	if BuildTime != "" {
		fmt.Fprintf(w, "Compiled the %s\n", BuildTime)
	}
	fmt.Fprintf(w, "For help enter \"%s --help\"\n", programName)
}
