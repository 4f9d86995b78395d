// Package main provides the bstrings command: it converts raw byte input
// into escaped binary string literals for embedding in exploit source code,
// dumps files as hexadecimal and generates the canonical bad-character probe
// sequence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/isseis/go-binstring-gen/internal/badchar"
	"github.com/isseis/go-binstring-gen/internal/bytesource"
	"github.com/isseis/go-binstring-gen/internal/cmdcommon"
	"github.com/isseis/go-binstring-gen/internal/config"
	"github.com/isseis/go-binstring-gen/internal/encoder"
	"github.com/isseis/go-binstring-gen/internal/logging"
	"github.com/isseis/go-binstring-gen/internal/terminal"
)

// Error definitions
var (
	ErrUnexpectedArgument = errors.New("unexpected positional argument")
)

type cliConfig struct {
	dumpFile    string
	hexEscape   bool
	genBadchar  bool
	inputFile   string
	width       uint
	syntaxName  string
	verbose     bool
	interactive bool
	showVersion bool
	configPath  string
	logLevel    string

	// explicit-flag tracking, so defaults file values never override the
	// command line
	widthSet       bool
	syntaxSet      bool
	verboseSet     bool
	interactiveSet bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, fs, err := parseArgs(args, stderr)
	if err != nil {
		printUsage(fs, stderr)
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.showVersion {
		cmdcommon.PrintVersion(stdout, programName())
		return 0
	}

	runID := logging.GenerateRunID()
	logging.Setup(cfg.logLevel, runID, stderr)

	if path := config.ResolvePath(cfg.configPath); path != "" {
		defaults, err := config.NewLoader().Load(path)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		applyDefaults(cfg, defaults)
		slog.Debug("defaults file applied", "path", path)
	}

	switch {
	case cfg.hexEscape:
		return runHexEscape(cfg, stdin, stdout, stderr)
	case cfg.dumpFile != "":
		return runDumpFile(cfg, stdout, stderr)
	case cfg.genBadchar:
		return runGenBadchar(cfg, stdout)
	default:
		// No action selected: show usage, not an error.
		printUsage(fs, stdout)
		return 0
	}
}

func parseArgs(args []string, stderr io.Writer) (*cliConfig, *flag.FlagSet, error) {
	cfg := &cliConfig{}

	fs := flag.NewFlagSet("bstrings", flag.ContinueOnError)
	fs.SetOutput(stderr)
	// Usage is rendered by the caller's error handling; a default Usage here
	// would make flag.Parse print it a second time.
	fs.Usage = func() {}

	fs.StringVar(&cfg.dumpFile, "dump-file", "", "dump content of file FILE in hexadecimal format")
	fs.StringVar(&cfg.dumpFile, "D", "", "short alias for -dump-file")
	fs.BoolVar(&cfg.hexEscape, "hex-escape", false, "escape input hexadecimal string")
	fs.BoolVar(&cfg.hexEscape, "x", false, "short alias for -hex-escape")
	fs.BoolVar(&cfg.genBadchar, "gen-badchar", false, "generate a bad character sequence string")
	fs.BoolVar(&cfg.genBadchar, "b", false, "short alias for -gen-badchar")
	fs.StringVar(&cfg.inputFile, "file", "", "read input from file FILE instead of stdin")
	fs.StringVar(&cfg.inputFile, "f", "", "short alias for -file")
	fs.UintVar(&cfg.width, "width", 0, "break binary strings to specified length in bytes (0 = unbounded)")
	fs.UintVar(&cfg.width, "w", 0, "short alias for -width")
	fs.StringVar(&cfg.syntaxName, "syntax", "", "syntax of the binary string output (c, python; default plain)")
	fs.StringVar(&cfg.syntaxName, "s", "", "short alias for -syntax")
	// verbose and quiet toggle the same state; last one given wins, like the
	// getopt flag-setter pair they mirror.
	fs.BoolFunc("verbose", "enable verbose output", func(string) error {
		cfg.verbose = true
		cfg.verboseSet = true
		return nil
	})
	fs.BoolFunc("quiet", "disable verbose output", func(string) error {
		cfg.verbose = false
		cfg.verboseSet = true
		return nil
	})
	fs.BoolVar(&cfg.interactive, "interactive", false, "enter interactive mode")
	fs.BoolVar(&cfg.showVersion, "version", false, "print version information")
	fs.StringVar(&cfg.configPath, "config", "", "path to TOML defaults file (default: $"+config.EnvConfigPath+")")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("%w: %q", ErrUnexpectedArgument, fs.Arg(0))
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width", "w":
			cfg.widthSet = true
		case "syntax", "s":
			cfg.syntaxSet = true
		case "interactive":
			cfg.interactiveSet = true
		}
	})

	return cfg, fs, nil
}

// applyDefaults fills options from the defaults file for every option the
// user did not set on the command line.
func applyDefaults(cfg *cliConfig, defaults *config.Defaults) {
	if !cfg.widthSet && defaults.Width != nil {
		cfg.width = *defaults.Width
		cfg.widthSet = true
	}
	if !cfg.syntaxSet && defaults.Syntax != nil {
		cfg.syntaxName = *defaults.Syntax
	}
	if !cfg.verboseSet && defaults.Verbose != nil {
		cfg.verbose = *defaults.Verbose
	}
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [OPTION]...\n", programName())
	_, _ = fmt.Fprintln(w, "Convert input to the specified binary string format.")
	_, _ = fmt.Fprintln(w, "At least one of -dump-file, -hex-escape or -gen-badchar must be given.")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func programName() string {
	return filepath.Base(os.Args[0])
}

func runHexEscape(cfg *cliConfig, stdin io.Reader, stdout, stderr io.Writer) int {
	if cfg.verbose {
		_, _ = fmt.Fprintln(stdout, "[*] Convert hexadecimal input to an escaped binary string.")
		printWidthNotice(cfg, stdout)
	}

	interactive := cfg.interactive
	var digits []byte
	var err error
	switch {
	case cfg.dumpFile != "":
		// -hex-escape combined with -dump-file renders the file to hex
		// pairs before escaping.
		digits, err = bytesource.ReadFileHex(cfg.dumpFile)
	case cfg.inputFile != "":
		digits, err = bytesource.ReadFileRaw(cfg.inputFile)
	default:
		if !cfg.interactiveSet {
			interactive = detectInteractive(stdin)
		}
		if interactive {
			_, _ = fmt.Fprintln(stdout, "[+] Hit CTRL-D twice to terminate input.")
		}
		digits, err = bytesource.ReadStream(stdin)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rendered, invalid := encoder.Encode(digits, encoder.Options{
		Syntax:      encoder.ParseSyntax(cfg.syntaxName),
		WidthBytes:  cfg.width,
		Verbose:     cfg.verbose,
		Interactive: interactive,
	})
	_, _ = io.WriteString(stdout, rendered)
	printInvalidWarning(cfg, invalid, stdout)
	slog.Debug("hex escape completed", "digits", len(digits), "invalid", invalid)
	return 0
}

func runDumpFile(cfg *cliConfig, stdout, stderr io.Writer) int {
	if err := bytesource.DumpHex(cfg.dumpFile, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runGenBadchar(cfg *cliConfig, stdout io.Writer) int {
	if cfg.verbose {
		_, _ = fmt.Fprintln(stdout, "[*] Generating bad character binary string.")
		printWidthNotice(cfg, stdout)
	}

	rendered, invalid := encoder.Encode(badchar.Sequence(), encoder.Options{
		Syntax:      encoder.ParseSyntax(cfg.syntaxName),
		WidthBytes:  cfg.width,
		Verbose:     cfg.verbose,
		Interactive: cfg.interactive,
	})
	_, _ = io.WriteString(stdout, rendered)
	printInvalidWarning(cfg, invalid, stdout)
	return 0
}

func printWidthNotice(cfg *cliConfig, stdout io.Writer) {
	if cfg.widthSet {
		_, _ = fmt.Fprintf(stdout, "[+] Binary string width is limited to %d bytes.\n", cfg.width)
	}
}

func printInvalidWarning(cfg *cliConfig, invalid int, stdout io.Writer) {
	if cfg.verbose && invalid > 0 {
		_, _ = fmt.Fprintf(stdout, "[-] Warning: %d non-hexadecimal character(s) detected in input.\n", invalid)
	}
}

// detectInteractive auto-enables interactive mode when the process reads the
// real stdin at a terminal. Substituted readers (tests, pipes) never prompt.
func detectInteractive(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	if !ok || f != os.Stdin {
		return false
	}
	return terminal.NewDetector(terminal.DetectorOptions{}).IsInteractive()
}
