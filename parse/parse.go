package parse

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/yamlmerge/debug"
	"github.com/signadot/yamlmerge/ir"

	"github.com/goccy/go-yaml"
)

// Parse parses every document in data, in order. The whole text is parsed
// before anything is returned: on error no documents are returned.
//
// An empty text contains no documents. A document with no content parses
// to a null node.
func Parse(data []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data), pOpts.decodeOptions()...)
	var docs []*ir.Node
	for i := 0; ; i++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Source: pOpts.source, Doc: i, Err: err}
		}
		node, err := FromYAML(v)
		if err != nil {
			return nil, &ParseError{Source: pOpts.source, Doc: i, Err: err}
		}
		if debug.Load() {
			debug.Logf("loaded %s document %d:\n%v\n", sourceName(pOpts.source), i, node)
		}
		docs = append(docs, node)
	}
	return docs, nil
}

func sourceName(source string) string {
	if source == "" {
		return "<text>"
	}
	return source
}

// FromYAML converts a value produced by the goccy/go-yaml decoder into a
// node tree. Mappings must be decoded as yaml.MapSlice to keep their order.
//
// The decoder rejects keys repeated in the text, but expands merge keys
// ("<<") in place, so a MapSlice may repeat a key; the later value wins and
// the key keeps its first position.
func FromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			key, err := FromYAML(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case map[string]any:
		return fromMap(x, func(k string) any { return k })
	case map[any]any:
		return fromMap(x, func(k any) any { return k })
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := FromYAML(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		return ir.FromString(x.String()), nil
	}
	return nil, fmt.Errorf("%w of type %T", ErrUnsupported, v)
}

func fromUint(u uint64) *ir.Node {
	if u > math.MaxInt64 {
		return ir.FromNumber(strconv.FormatUint(u, 10))
	}
	return ir.FromInt(int64(u))
}

// fromMap handles unordered maps, which the decoder only produces when
// asked to; keys are sorted by their text for a deterministic order.
func fromMap[K comparable](m map[K]any, key func(K) any) (*ir.Node, error) {
	type entry struct {
		key *ir.Node
		val any
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		kn, err := FromYAML(key(k))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{key: kn, val: v})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Or(strings.Compare(a.key.Text(), b.key.Text()), cmp.Compare(a.key.Type, b.key.Type))
	})
	res := ir.Object()
	for _, e := range entries {
		val, err := FromYAML(e.val)
		if err != nil {
			return nil, err
		}
		res.Set(e.key, val)
	}
	return res, nil
}
