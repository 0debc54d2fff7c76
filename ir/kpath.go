package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/yamlmerge/ir/kpath"
)

// KPath returns the kinded path of this node's position in the tree.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "a"
//   - Array element at index 0 → "[0]"
//   - Mixed "a[0].b" → "a[0].b"
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		f := kpath.QuoteField(node.ParentField)
		prefix := node.Parent.KPath()
		if prefix == "" {
			return f
		}
		return prefix + "." + f
	case ArrayType:
		return node.Parent.KPath() + "[" + strconv.Itoa(node.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetKPath navigates the tree rooted at node using a kinded path and returns
// the node found there. The result is live: it is part of the tree.
//
// A path which does not resolve yields an error wrapping ErrNotFound. A path
// which tries to descend into a node of the wrong kind yields a
// *TypeMismatchError.
func (node *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	if p.HasWildcard() {
		return nil, fmt.Errorf("wildcard in get path %q", kp)
	}
	res := node
	for ; p != nil; p = p.Next {
		switch {
		case p.Index != nil:
			if res.Type != ArrayType {
				return nil, mismatch(res, ArrayType.String())
			}
			index := *p.Index
			if index >= len(res.Values) {
				return nil, fmt.Errorf("%w: %s: index %d out of bounds (len %d)", ErrNotFound, kp, index, len(res.Values))
			}
			res = res.Values[index]
		case p.Field != nil:
			if res.Type != ObjectType {
				return nil, mismatch(res, ObjectType.String())
			}
			next := Get(res, *p.Field)
			if next == nil {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, kp)
			}
			res = next
		}
	}
	return res, nil
}

// ListKPath collects all nodes matching a kinded path, which may contain
// wildcards. Segments which do not match the kind of the node they are
// applied to contribute nothing.
func (node *Node) ListKPath(dst []*Node, kp string) ([]*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return node.listKPath(dst, p), nil
}

func (node *Node) listKPath(dst []*Node, kp *kpath.KPath) []*Node {
	if kp == nil {
		return append(dst, node)
	}
	switch node.Type {
	case ObjectType:
		switch {
		case kp.FieldAll:
			for _, v := range node.Values {
				dst = v.listKPath(dst, kp.Next)
			}
		case kp.Field != nil:
			if v := Get(node, *kp.Field); v != nil {
				dst = v.listKPath(dst, kp.Next)
			}
		}
	case ArrayType:
		switch {
		case kp.IndexAll:
			for _, v := range node.Values {
				dst = v.listKPath(dst, kp.Next)
			}
		case kp.Index != nil:
			if *kp.Index < len(node.Values) {
				dst = node.Values[*kp.Index].listKPath(dst, kp.Next)
			}
		}
	}
	return dst
}
