// Package logging sets up the process-wide slog logger. Diagnostics that are
// part of the byte-exact output contract (verbose preamble and warning lines)
// are printed by the CLI driver directly; slog only carries debug and error
// detail, and always writes to stderr so stdout stays clean for the rendered
// binary string.
package logging

import (
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"
)

// GenerateRunID generates a ULID identifying one process invocation. Attached
// to every log record so concurrent pipeline runs can be told apart.
func GenerateRunID() string {
	return ulid.Make().String()
}

// Setup installs a text handler on w as the default logger. An unparsable
// level falls back to warn, keeping the tool quiet unless asked otherwise.
func Setup(level, runID string, w io.Writer) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		slogLevel = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel,
	})
	logger := slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("run_id", runID),
	}))
	slog.SetDefault(logger)
}
