// Package ir provides the in-memory document tree that YAML documents are
// loaded into, merged in, and encoded from.
//
// # Node Structure
//
// A Node represents a single value in a document. Nodes can be:
//
//   - Scalars: null, boolean, number, string
//   - Containers: object (ordered key-value pairs), array (ordered list)
//
// The Type field indicates which fields of the Node carry the value.
//
// # IR Structure Constraints
//
// ## Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Field order is
// insertion order and is significant: it is the order in which the object is
// encoded.
//
// Keys are nodes themselves, conventionally strings, and are unique under
// structural comparison (see Equal). Use Set to store a value: it keeps the
// position of an existing key and appends new keys at the end.
//
// ## Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a text fallback if neither can represent it
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: text of the key if parent is an object
//
// Use KPath() to get a kinded path string and GetKPath() to navigate:
//
//	child, err := node.GetKPath("foo.bar[0]")
//	if errors.Is(err, ir.ErrNotFound) {
//	    // path doesn't exist
//	}
//
// Typed views (AsString, AsInt64, AsObject, ...) return a *TypeMismatchError
// when the node holds a different kind of value.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/signadot/yamlmerge/parse - Parses YAML text into IR nodes
//   - github.com/signadot/yamlmerge/encode - Encodes IR nodes to YAML text
//   - github.com/signadot/yamlmerge/merge - Deep merges object nodes
package ir
