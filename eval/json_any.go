package eval

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/signadot/yamlmerge/ir"
	"github.com/signadot/yamlmerge/parse"
)

// FromJSONAny converts a value of the kind produced by encoding/json (or by
// an expression) into a node tree. Go maps are unordered: their fields are
// placed in sorted order.
func FromJSONAny(v any) (*ir.Node, error) {
	if node, ok := v.(*ir.Node); ok {
		return node.Clone(), nil
	}
	if node, err := parse.FromYAML(v); err == nil {
		return node, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	docs, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("expected 1 document from %T, got %d", v, len(docs))
	}
	return docs[0], nil
}

// ToJSONAny converts node to plain Go values: map[string]any for objects,
// keyed by the text of each key, []any for arrays, and int, float64, string,
// bool or nil for scalars.
func ToJSONAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			res[ir.KeyText(field)] = ToJSONAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToJSONAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		f, _ := strconv.ParseFloat(node.Number, 64)
		return f
	}
	return nil
}
