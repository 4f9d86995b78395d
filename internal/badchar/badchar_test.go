package badchar

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	seq := string(Sequence())

	assert.Len(t, seq, SequenceLength)
	assert.True(t, strings.HasPrefix(seq, "010203"))
	assert.True(t, strings.HasSuffix(seq, "fdfeff"))
	assert.NotContains(t, seq[:2], "00", "0x00 must not appear as the first probe byte")

	var want strings.Builder
	for i := 1; i < 256; i++ {
		fmt.Fprintf(&want, "%02x", i)
	}
	assert.Equal(t, want.String(), seq)
}

func TestSequence_Deterministic(t *testing.T) {
	assert.Equal(t, Sequence(), Sequence())
}
