// Package terminal decides whether the bstrings process should behave
// interactively: print the input prompt and visually separate the binary
// string output from echoed terminal input.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables. A CI run is never
// treated as interactive even when a pseudo-terminal is attached.
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
}

// DetectorOptions controls interactive detection.
type DetectorOptions struct {
	ForceInteractive    bool // --interactive given: prompt regardless of environment
	ForceNonInteractive bool // input is piped or redirected by the caller
}

// Detector reports whether the current invocation should prompt for input.
type Detector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
}

type defaultDetector struct {
	options DetectorOptions
}

// NewDetector creates a detector with the given options.
func NewDetector(options DetectorOptions) Detector {
	return &defaultDetector{options: options}
}

// IsInteractive returns true when the user is typing hex digits at a
// terminal: forced on by option, otherwise both stdin and stdout must be
// terminals and the process must not run under CI.
func (d *defaultDetector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}
	if d.IsCIEnvironment() {
		return false
	}
	return d.IsTerminal()
}

// IsTerminal checks if stdin and stdout are both connected to a terminal.
// The prompt is only useful when input is typed, and the leading blank line
// only matters when output lands on the same screen.
func (d *defaultDetector) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// IsCIEnvironment checks if the current environment is a CI/CD system.
func (d *defaultDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value != "" {
			if envVar == "CI" {
				return isCITruthy(value)
			}
			return true
		}
	}
	return false
}

// isCITruthy checks if a CI environment variable value should be considered
// "true". CI=false or CI=0 is not a CI environment.
func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
