package merge

import (
	"encoding/json"
	"testing"

	"github.com/signadot/yamlmerge/encode"
	"github.com/signadot/yamlmerge/eval"
	"github.com/signadot/yamlmerge/ir"
	"github.com/signadot/yamlmerge/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	docs, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("could not parse %q: %v", in, err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected one document in %q", in)
	}
	return docs[0]
}

type mergeTest struct {
	name        string
	left, right string
	want        string
}

var mergeTests = []mergeTest{
	{
		name:  "append new keys",
		left:  "apple: 1\nbanana: 2",
		right: "cherry: 3",
		want:  "apple: 1\nbanana: 2\ncherry: 3",
	},
	{
		name:  "override keeps position",
		left:  "apple: 1\nbanana: 2",
		right: "apple: 5",
		want:  "apple: 5\nbanana: 2",
	},
	{
		name:  "override middle",
		left:  "apple: 1\nbanana: 2\ncherry: 3",
		right: "banana: 4",
		want:  "apple: 1\nbanana: 4\ncherry: 3",
	},
	{
		name:  "recursive",
		left:  "cherry:\n  sweet: 1",
		right: "cherry:\n  tart: 2",
		want:  "cherry:\n  sweet: 1\n  tart: 2",
	},
	{
		name:  "recursive override",
		left:  "apple: 1\ncherry:\n  sweet: 1",
		right: "cherry:\n  sweet: 2",
		want:  "apple: 1\ncherry:\n  sweet: 2",
	},
	{
		name:  "deep",
		left:  "a:\n  b:\n    c: 1\n    d: 2\n  e: 3",
		right: "a:\n  b:\n    d: 20\n    f: 30\n  g: 4",
		want:  "a:\n  b:\n    c: 1\n    d: 20\n    f: 30\n  e: 3\n  g: 4",
	},
	{
		name:  "scalar replaces mapping",
		left:  "x:\n  k: 1",
		right: "x: 5",
		want:  "x: 5",
	},
	{
		name:  "mapping replaces scalar",
		left:  "x: 5\nz: 0",
		right: "x:\n  k: 1",
		want:  "x:\n  k: 1\nz: 0",
	},
	{
		name:  "sequences replace",
		left:  "l: [1, 2, 3]",
		right: "l: [4]",
		want:  "l:\n  - 4",
	},
	{
		name:  "null replaces",
		left:  "a:\n  b: 1",
		right: "a: null",
		want:  "a: null",
	},
	{
		name:  "new nested key is appended",
		left:  "a: 1",
		right: "b:\n  c: 2",
		want:  "a: 1\nb:\n  c: 2",
	},
}

func TestNodes(t *testing.T) {
	for _, tt := range mergeTests {
		t.Run(tt.name, func(t *testing.T) {
			left := mustParse(t, tt.left)
			right := mustParse(t, tt.right)
			leftText := encode.MustString(left)
			rightText := encode.MustString(right)

			got := encode.MustString(Nodes(left, right))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
			}
			if encode.MustString(left) != leftText || encode.MustString(right) != rightText {
				t.Errorf("Nodes modified its inputs")
			}
		})
	}
}

func TestIntoMatchesNodes(t *testing.T) {
	for _, tt := range mergeTests {
		t.Run(tt.name, func(t *testing.T) {
			left := mustParse(t, tt.left)
			right := mustParse(t, tt.right)
			pure := Nodes(left, right)
			if !Into(left, right) {
				t.Fatalf("Into refused two objects")
			}
			if !ir.Equal(pure, left) {
				t.Errorf("Into gave %q, Nodes gave %q", encode.MustString(left), encode.MustString(pure))
			}
		})
	}
}

func TestIntoDoesNotShare(t *testing.T) {
	dst := mustParse(t, "a: 1")
	src := mustParse(t, "b:\n  c: [1]")
	Into(dst, src)
	src.Values[0].Values[0].Values[0] = ir.FromInt(99)
	src.Values[0].Set(ir.FromString("d"), ir.FromInt(1))
	if got := encode.MustString(dst); got != "a: 1\nb:\n  c:\n    - 1" {
		t.Errorf("dst changed through src: %q", got)
	}
}

func TestIntoRejectsNonObjects(t *testing.T) {
	dst := mustParse(t, "a: 1")
	for _, in := range []string{"[1, 2]", "5", "text"} {
		if Into(dst, mustParse(t, in)) {
			t.Errorf("Into accepted %q", in)
		}
	}
	if got := encode.MustString(dst); got != "a: 1" {
		t.Errorf("dst modified: %q", got)
	}
	if Into(mustParse(t, "[1]"), dst) {
		t.Errorf("Into accepted an array destination")
	}
}

func TestNodesNonObjectIsReplacement(t *testing.T) {
	got := Nodes(mustParse(t, "a: 1"), mustParse(t, "[x]"))
	if got.Type != ir.ArrayType || got.Parent != nil {
		t.Errorf("expected a detached copy of the array, got %+v", got)
	}
}

func TestSelfMergeIdempotent(t *testing.T) {
	in := "apple: 1\ncherry:\n  sweet: 1\n  list: [a, b]\nz: null"
	doc := mustParse(t, in)
	want := encode.MustString(doc)

	Into(doc, mustParse(t, in))
	if got := encode.MustString(doc); got != want {
		t.Errorf("merging a copy of itself changed the document:\n%s", cmp.Diff(want, got))
	}
	Into(doc, doc)
	if got := encode.MustString(doc); got != want {
		t.Errorf("merging itself changed the document:\n%s", cmp.Diff(want, got))
	}
}

// For documents without nulls, merging objects coincides with RFC 7386 JSON
// merge patch.
func TestAgreesWithJSONMergePatch(t *testing.T) {
	for _, tt := range mergeTests {
		if tt.name == "null replaces" {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			left := mustParse(t, tt.left)
			right := mustParse(t, tt.right)
			leftJSON, err := json.Marshal(eval.ToJSONAny(left))
			if err != nil {
				t.Fatal(err)
			}
			rightJSON, err := json.Marshal(eval.ToJSONAny(right))
			if err != nil {
				t.Fatal(err)
			}
			patched, err := jsonpatch.MergePatch(leftJSON, rightJSON)
			if err != nil {
				t.Fatal(err)
			}
			var want any
			if err := json.Unmarshal(patched, &want); err != nil {
				t.Fatal(err)
			}
			gotJSON, err := json.Marshal(eval.ToJSONAny(Nodes(left, right)))
			if err != nil {
				t.Fatal(err)
			}
			var got any
			if err := json.Unmarshal(gotJSON, &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("merge differs from JSON merge patch (-want +got):\n%s", diff)
			}
		})
	}
}
