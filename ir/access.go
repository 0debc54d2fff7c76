package ir

import "math"

// Typed views of a node. Each returns a *TypeMismatchError when the node
// holds a different kind of value; no coercion between kinds is done.

func AsString(node *Node) (string, error) {
	if node.Type != StringType {
		return "", mismatch(node, "string")
	}
	return node.String, nil
}

func AsInt64(node *Node) (int64, error) {
	if node.Type != NumberType || node.Int64 == nil {
		return 0, mismatch(node, "int64")
	}
	return *node.Int64, nil
}

func AsFloat64(node *Node) (float64, error) {
	if node.Type != NumberType || node.Float64 == nil {
		return math.NaN(), mismatch(node, "float64")
	}
	return *node.Float64, nil
}

func AsBool(node *Node) (bool, error) {
	if node.Type != BoolType {
		return false, mismatch(node, "bool")
	}
	return node.Bool, nil
}

// AsObject returns the ordered entries of an object node. The keys and
// values are the live nodes of the tree.
func AsObject(node *Node) ([]KeyVal, error) {
	if node.Type != ObjectType {
		return nil, mismatch(node, ObjectType.String())
	}
	res := make([]KeyVal, len(node.Fields))
	for i := range node.Fields {
		res[i] = KeyVal{Key: node.Fields[i], Val: node.Values[i]}
	}
	return res, nil
}

func AsArray(node *Node) ([]*Node, error) {
	if node.Type != ArrayType {
		return nil, mismatch(node, ArrayType.String())
	}
	return node.Values, nil
}

func IsNull(node *Node) bool {
	return node.Type == NullType
}
