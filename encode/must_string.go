package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/yamlmerge/ir"
)

// MustString encodes node and returns the text without the newline ending
// the document.
// It panics if node cannot be encoded.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
