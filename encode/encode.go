package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/yamlmerge/ir"

	"github.com/goccy/go-yaml"
)

var docStart = []byte("---\n")

type EncState struct {
	indent    int
	indentSeq bool
	colors    *Colors
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2, indentSeq: true}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w as a single YAML document, newline terminated and
// without a document start marker. Object fields are written in order at
// every level. An empty object is written as "{}".
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	d, err := es.encode(node)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func (es *EncState) encode(node *ir.Node) ([]byte, error) {
	var d []byte
	if node.Type == ir.ObjectType && len(node.Fields) == 0 {
		d = []byte("{}\n")
	} else {
		buf := bytes.NewBuffer(nil)
		enc := yaml.NewEncoder(buf, yaml.Indent(es.indent), yaml.IndentSequence(es.indentSeq))
		if err := enc.Encode(ToYAML(node)); err != nil {
			_ = enc.Close()
			return nil, fmt.Errorf("could not encode %s: %w", node.Type, err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("could not encode %s: %w", node.Type, err)
		}
		// the emitter does not write a marker for a single document; make
		// sure of it rather than trusting its defaults.
		d, _ = bytes.CutPrefix(buf.Bytes(), docStart)
		if node.Type == ir.ArrayType && es.indentSeq {
			d = dedent(d, es.indent)
		}
	}
	if es.colors != nil {
		d = es.colors.colorize(d)
	}
	return d, nil
}

// dedent removes the indentation IndentSequence gives a sequence at the
// root of a document, where it has no parent to be indented under.
func dedent(d []byte, n int) []byte {
	prefix := bytes.Repeat([]byte{' '}, n)
	lines := bytes.SplitAfter(d, []byte{'\n'})
	for i, line := range lines {
		lines[i], _ = bytes.CutPrefix(line, prefix)
	}
	return bytes.Join(lines, nil)
}

// ToYAML converts node to the values the goccy/go-yaml encoder understands,
// using yaml.MapSlice for objects so that field order survives. The encoder
// only accepts string keys: keys are written as their text, so a number,
// bool or null key reads back as a string.
func ToYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   ir.KeyText(node.Fields[i]),
				Value: ToYAML(node.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToYAML(v)
		}
		return res
	case ir.StringType:
		if needsQuotes(node.String) {
			return quoted(node.String)
		}
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
			return u
		}
		return node.Number
	}
	return nil
}
