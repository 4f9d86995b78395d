// Package bytesource supplies the input adapters feeding the hex-escape
// encoder. File input destined for escaping is rendered to ASCII hex pairs
// before the encoder sees it, while standard input is handed over verbatim
// and relies on the encoder's hex-digit filter. The asymmetry is deliberate:
// stdin input is expected to be pasted hex text (tool output, debugger
// dumps), file input is expected to be raw binary.
package bytesource

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrOpenInput is returned when an input file cannot be opened or read.
var ErrOpenInput = errors.New("input file cannot be read")

// ReadStream reads r until end of stream and returns the bytes verbatim.
// Used for the stdin path of the hex-escape action.
func ReadStream(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input stream: %w", err)
	}
	return data, nil
}

// ReadFileRaw returns the raw bytes of the file at path.
func ReadFileRaw(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrOpenInput, path, err)
	}
	return data, nil
}

// ReadFileHex reads the file at path and renders every byte as a two-digit
// lowercase hex pair. The result is exactly twice the file length.
func ReadFileHex(path string) ([]byte, error) {
	data, err := ReadFileRaw(path)
	if err != nil {
		return nil, err
	}
	out := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(out, data)
	return out, nil
}

// DumpHex writes the file at path to w as a continuous stream of lowercase
// hex pairs. No trailing newline is emitted, so the output can be piped
// straight back into the hex-escape action.
func DumpHex(path string, w io.Writer) error {
	out, err := ReadFileHex(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing hex dump: %w", err)
	}
	return nil
}
