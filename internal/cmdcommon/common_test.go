package cmdcommon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "bstrings")

	out := buf.String()
	assert.Contains(t, out, "Binary String Toolkit")
	assert.Contains(t, out, Version)
	assert.Contains(t, out, `"bstrings --help"`)
}
