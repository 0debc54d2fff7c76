// Package yamlmerge deep merges YAML documents in order, later documents
// overriding earlier ones field by field, and encodes the result back to
// YAML.
//
// # Usage
//
//	acc := yamlmerge.New()
//	if err := acc.MergeAll([]string{"base.yaml", "prod.yaml", "replicas: 3"}); err != nil {
//	    return err
//	}
//	fmt.Println(acc)
//
// Each source is a file path or YAML text. Mappings present on both sides
// are merged recursively; everything else is replaced by the later value.
// Keys keep the position they were first given, and new keys are appended,
// so the output order is stable.
//
// # Debugging
//
// Setting YAMLMERGE_DEBUG_MERGE=true in the environment prints a line diff
// of the accumulated document to stderr after every merge.
//
// # Related Packages
//
//   - github.com/signadot/yamlmerge/ir - document tree
//   - github.com/signadot/yamlmerge/merge - merge algorithm
//   - github.com/signadot/yamlmerge/parse - loading YAML
//   - github.com/signadot/yamlmerge/encode - writing YAML
package yamlmerge
