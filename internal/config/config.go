// Package config loads the optional TOML defaults file for the bstrings
// command line. Values from the file only apply to options the user did not
// set explicitly on the command line.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath names the environment variable consulted for the defaults
// file path when the --config flag is not given.
const EnvConfigPath = "BSTRINGS_CONFIG"

// Error definitions for the config package
var (
	// ErrConfigNotReadable is returned when the defaults file cannot be read
	ErrConfigNotReadable = errors.New("config file cannot be read")
	// ErrUnknownSyntax is returned when the syntax key holds an unsupported name
	ErrUnknownSyntax = errors.New("unknown syntax in config file")
)

// Defaults holds the optional values a defaults file may provide. Pointer
// fields distinguish "not present in the file" from an explicit zero value.
type Defaults struct {
	Width   *uint   `toml:"width"`
	Syntax  *string `toml:"syntax"`
	Verbose *bool   `toml:"verbose"`
}

// Loader loads and validates defaults files.
type Loader struct{}

// NewLoader creates a new defaults file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the defaults file at path. A missing or unreadable file is an
// error; callers decide whether a file is expected at all (see ResolvePath).
func (l *Loader) Load(path string) (*Defaults, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrConfigNotReadable, path, err)
	}

	var d Defaults
	if err := toml.Unmarshal(content, &d); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ResolvePath picks the defaults file to load: the explicit flag value wins,
// then the BSTRINGS_CONFIG environment variable. An empty result means no
// defaults file applies.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

func validate(d *Defaults) error {
	if d.Syntax == nil {
		return nil
	}
	switch *d.Syntax {
	case "", "plain", "c", "python":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSyntax, *d.Syntax)
	}
}
