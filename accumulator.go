package yamlmerge

import (
	"fmt"
	"io"

	"github.com/signadot/yamlmerge/debug"
	"github.com/signadot/yamlmerge/encode"
	"github.com/signadot/yamlmerge/eval"
	"github.com/signadot/yamlmerge/ir"
	"github.com/signadot/yamlmerge/merge"
	"github.com/signadot/yamlmerge/parse"
)

// Accumulator holds the result of merging YAML documents one after the
// other. It starts out as an empty mapping; each merge mutates it in place.
//
// The zero value is an empty Accumulator ready to use. An Accumulator is not
// safe for concurrent use: callers sharing one between goroutines must
// serialize access themselves.
type Accumulator struct {
	data *ir.Node
}

func New() *Accumulator {
	return &Accumulator{data: ir.Object()}
}

func (a *Accumulator) root() *ir.Node {
	if a.data == nil {
		a.data = ir.Object()
	}
	return a.data
}

// Merge merges the documents of one source, given as a file path or as YAML
// text (see parse.Load), in the order they appear. Documents which are not
// mappings are skipped.
//
// The source is parsed completely before anything is merged, so on error
// the Accumulator is left as it was.
func (a *Accumulator) Merge(fileOrText string) error {
	docs, err := parse.Load(fileOrText)
	if err != nil {
		return err
	}
	a.MergeNodes(docs...)
	return nil
}

// MergeAll merges sources in order. It stops at the first source which
// fails to load; the sources before it stay merged.
func (a *Accumulator) MergeAll(sources []string) error {
	for i, src := range sources {
		if err := a.Merge(src); err != nil {
			return fmt.Errorf("error merging source %d: %w", i, err)
		}
	}
	return nil
}

// MergeNodes merges already parsed documents in order, skipping those which
// are not objects. The documents are not modified and are not retained.
func (a *Accumulator) MergeNodes(docs ...*ir.Node) {
	root := a.root()
	var before string
	if debug.Merge() {
		before = a.String()
	}
	n := 0
	for _, doc := range docs {
		if merge.Into(root, doc) {
			n++
		}
	}
	if debug.Merge() {
		debug.Logf("merged %d of %d document(s):\n%s", n, len(docs), debug.Diff(before, a.String()))
	}
}

// Reset empties the Accumulator.
func (a *Accumulator) Reset() {
	a.data = ir.Object()
}

// Data returns the merged mapping. It is live: later merges change it, and
// changes made to it are seen by the Accumulator.
func (a *Accumulator) Data() *ir.Node {
	return a.root()
}

// String returns the merged mapping as YAML text without a final newline.
// An empty Accumulator yields "{}".
func (a *Accumulator) String() string {
	return encode.MustString(a.root())
}

// Encode writes the merged mapping to w as a YAML document.
func (a *Accumulator) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(a.root(), w, opts...)
}

// Get returns the value at a kinded path such as "servers[0].name". The
// empty path is the whole mapping. A missing value yields an error matching
// ir.ErrNotFound.
func (a *Accumulator) Get(path string) (*ir.Node, error) {
	return a.root().GetKPath(path)
}

func (a *Accumulator) GetString(path string) (string, error) {
	node, err := a.Get(path)
	if err != nil {
		return "", err
	}
	return ir.AsString(node)
}

func (a *Accumulator) GetInt64(path string) (int64, error) {
	node, err := a.Get(path)
	if err != nil {
		return 0, err
	}
	return ir.AsInt64(node)
}

func (a *Accumulator) GetFloat64(path string) (float64, error) {
	node, err := a.Get(path)
	if err != nil {
		return 0, err
	}
	return ir.AsFloat64(node)
}

func (a *Accumulator) GetBool(path string) (bool, error) {
	node, err := a.Get(path)
	if err != nil {
		return false, err
	}
	return ir.AsBool(node)
}

func (a *Accumulator) GetObject(path string) ([]ir.KeyVal, error) {
	node, err := a.Get(path)
	if err != nil {
		return nil, err
	}
	return ir.AsObject(node)
}

func (a *Accumulator) GetArray(path string) ([]*ir.Node, error) {
	node, err := a.Get(path)
	if err != nil {
		return nil, err
	}
	return ir.AsArray(node)
}

// Query evaluates an expr-lang expression over the merged mapping; see
// package eval.
func (a *Accumulator) Query(expression string) (*ir.Node, error) {
	return eval.Eval(a.root(), expression)
}
