package ir

import "slices"

// Equal reports whether a and b hold the same value. This is the identity of
// object keys: Lookup and Set find a key by it.
//
// Numbers are equal only in the same representation, so 1 and 1.0 differ,
// while NaN equals NaN. Object fields are compared in order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return numbersEqual(a, b)
	case ArrayType:
		return slices.EqualFunc(a.Values, b.Values, Equal)
	case ObjectType:
		return slices.EqualFunc(a.Fields, b.Fields, Equal) &&
			slices.EqualFunc(a.Values, b.Values, Equal)
	}
	return false
}

func numbersEqual(a, b *Node) bool {
	switch {
	case a.Int64 != nil || b.Int64 != nil:
		return a.Int64 != nil && b.Int64 != nil && *a.Int64 == *b.Int64
	case a.Float64 != nil || b.Float64 != nil:
		if a.Float64 == nil || b.Float64 == nil {
			return false
		}
		x, y := *a.Float64, *b.Float64
		return x == y || (x != x && y != y)
	}
	return a.Number == b.Number
}
