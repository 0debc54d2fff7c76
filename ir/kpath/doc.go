// Package kpath parses kinded paths used to address values inside a
// document tree.
//
// Kinded paths encode the kind of container being traversed in the syntax:
//   - .field  - Object field access
//   - [index] - Array index
//   - .* / [*] - Wildcards, accepted only by listing operations
//
// Fields containing '.', '[', ']' or quotes, or which are empty, are written
// quoted: a.'x.y'[0] or a."x.y"[0].
//
// # Usage
//
//	kp, err := kpath.Parse("servers[0].name")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(kp) // servers[0].name
package kpath
