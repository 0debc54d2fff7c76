// Package merge deep merges object nodes.
//
// Merging right into left walks right's fields in order. A field present on
// both sides whose values are both objects is merged recursively; any other
// field of right replaces the value in left, or is appended when left lacks
// it. Replaced fields keep their position. Scalars and arrays are never
// merged element-wise, and when the kinds of the two values differ the right
// hand value wins without error.
package merge

import "github.com/signadot/yamlmerge/ir"

// Nodes returns the merge of right into left without modifying either.
// If either side is not an object the result is a copy of right.
func Nodes(left, right *ir.Node) *ir.Node {
	if left.Type != ir.ObjectType || right.Type != ir.ObjectType {
		return detach(right.Clone())
	}
	res := detach(left.Clone())
	Into(res, right)
	return res
}

// Into merges src into dst in place, with the same result as Nodes. Values
// taken from src are copied, so dst never shares nodes with src. It reports
// false, leaving dst untouched, if either side is not an object.
func Into(dst, src *ir.Node) bool {
	if dst.Type != ir.ObjectType || src.Type != ir.ObjectType {
		return false
	}
	for i, key := range src.Fields {
		sv := src.Values[i]
		dv := dst.Lookup(key)
		if dv == sv {
			continue
		}
		if dv != nil && Into(dv, sv) {
			continue
		}
		dst.Set(key.Clone(), sv.Clone())
	}
	return true
}

func detach(node *ir.Node) *ir.Node {
	node.Parent = nil
	node.ParentIndex = 0
	node.ParentField = ""
	return node
}
