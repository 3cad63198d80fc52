package runner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// decodeBytes converts raw child output to text: invalid UTF-8 sequences
// are replaced with the replacement rune and trailing whitespace is
// trimmed. Applied uniformly to streamed lines, the leftover stdout read,
// and the stderr read.
func decodeBytes(b []byte) string {
	return decodeString(string(b))
}

// decodeString trims trailing whitespace from already-decoded text without
// reprocessing valid content.
func decodeString(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
