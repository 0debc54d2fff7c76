package ir

import (
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = KeyText(yf)
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

// Text returns the plain text form of a scalar node. Containers yield "".
func (y *Node) Text() string {
	switch y.Type {
	case StringType:
		return y.String
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NullType:
		return "null"
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return y.Number
	}
	return ""
}

// KeyText is the field name recorded in ParentField for values stored
// under key.
func KeyText(key *Node) string {
	if key == nil {
		return ""
	}
	return key.Text()
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber holds a number which fits neither int64 nor float64 without
// loss, such as integers above math.MaxInt64.
func FromNumber(text string) *Node {
	return &Node{
		Type:   NumberType,
		Number: text,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object from a Go map. Go maps are unordered, so fields
// are placed in sorted key order.
func FromMap(yMap map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(FromString(key), yMap[key])
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object in the order of kvs. A later duplicate key
// overwrites the value of the first occurrence in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for i := range kvs {
		kv := &kvs[i]
		key := kv.Key
		if key == nil {
			key = Null()
		}
		res.Set(key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Index returns the position of key among the fields of y, comparing keys
// structurally, or -1.
func (y *Node) Index(key *Node) int {
	for i, f := range y.Fields {
		if Equal(f, key) {
			return i
		}
	}
	return -1
}

// Lookup returns the value stored under key, or nil.
func (y *Node) Lookup(key *Node) *Node {
	i := y.Index(key)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// Set stores val under key. An existing entry keeps its position and key
// node and only has its value replaced; a new key is appended.
func (y *Node) Set(key, val *Node) {
	i := y.Index(key)
	if i < 0 {
		i = len(y.Fields)
		y.Fields = append(y.Fields, key)
		y.Values = append(y.Values, val)
		key.Parent = y
		key.ParentIndex = i
		key.ParentField = KeyText(key)
	} else {
		y.Values[i] = val
	}
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = KeyText(y.Fields[i])
}

// Get returns the value of the first field whose text is field.
func Get(y *Node, field string) *Node {
	for i, f := range y.Fields {
		if f.Type.IsLeaf() && f.Text() == field {
			return y.Values[i]
		}
	}
	return nil
}
