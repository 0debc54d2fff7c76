package encode

import (
	"strconv"
	"strings"
	"unicode"
)

// quoted is a string the emitter writes in double-quoted style.
type quoted string

func (q quoted) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(q))), nil
}

// needsQuotes reports whether s holds characters the plain and literal
// styles do not carry intact. The scanner drops tabs and other control
// characters from plain scalars, and a literal block loses the line breaks
// it ends with once the document's final newline is removed.
func needsQuotes(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return !unicode.IsPrint(r) })
}
