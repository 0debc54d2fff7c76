// Package encode encodes IR nodes to YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(node, os.Stdout, encode.Indent(4), encode.ColorAuto(os.Stdout))
//
// Encoding is the inverse of parse.Parse for a single document: fields keep
// their order, and scalars are written in the YAML canonical form of their
// parsed value. Strings holding line breaks, tabs or other characters
// which are not printable are written double-quoted.
//
// Keys are written as their text. A key holding a number, a bool or null
// therefore reads back as a string, and a key holding control characters
// does not read back intact.
//
// # Related Packages
//
//   - github.com/signadot/yamlmerge/ir - IR representation
//   - github.com/signadot/yamlmerge/parse - Parse text to IR
package encode
