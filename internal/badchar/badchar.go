// Package badchar generates the canonical bad-character probe sequence used
// to detect bytes that get mangled or truncated when shellcode passes through
// a vulnerable program's input handling.
package badchar

const hexDigits = "0123456789abcdef"

// SequenceLength is the length of the generated hex digit stream: two digits
// for each of the byte values 0x01 through 0xFF.
const SequenceLength = 510

// Sequence returns the bad-character hex digit stream: the lowercase
// two-digit representations of 1 through 255 in ascending order. The result
// is always exactly SequenceLength bytes.
func Sequence() []byte {
	buf := make([]byte, 0, SequenceLength)
	for i := 1; i < 256; i++ {
		buf = append(buf, hexDigits[i>>4], hexDigits[i&0x0f])
	}
	return buf
}
