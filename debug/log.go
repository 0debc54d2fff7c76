package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/yamlmerge/encode"
	"github.com/signadot/yamlmerge/ir"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = YAML(x)
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// YAML renders node for a log line.
func YAML(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", node)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Diff renders a line diff between two texts, prefixing removed lines
// with "- ", added lines with "+ " and unchanged lines with "  ".
func Diff(from, to string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}
