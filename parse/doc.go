// Package parse loads YAML text into IR nodes.
//
// # Usage
//
//	// Parse YAML text; one node per document
//	docs, err := parse.Parse([]byte("name: alice\nage: 30\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Load a file, or text when no such file exists
//	docs, err := parse.Load("config.yaml")
//
// Mappings keep the order in which their keys appear in the text. Errors
// match ErrParse or ErrIO under errors.Is; use errors.As with *ParseError or
// *IOError for details.
//
// # Limitations
//
// Documents are decoded by goccy/go-yaml, whose ordered maps always have
// string keys: a key such as 1, true or ~ loads as the string "1", "true"
// or "null". Plain integers beyond the range of uint64 load as strings, so
// only integers between math.MaxInt64 and math.MaxUint64 are held as number
// text (see ir.FromNumber). Keys repeated in the text are a parse error.
//
// Setting YAMLMERGE_DEBUG_LOAD=true in the environment traces every loaded
// document to stderr.
//
// # Related Packages
//
//   - github.com/signadot/yamlmerge/ir - IR representation
//   - github.com/signadot/yamlmerge/encode - Encode IR to text
package parse
