// Package eval evaluates expr-lang expressions against document trees.
//
// The fields of an object document are the variables of the expression:
//
//	res, err := eval.Eval(doc, `replicas * 2`)
//
// Two functions address the document by kinded path:
//
//	getpath("servers[0].name")  // the value at a path, or nil
//	listpath("servers[*].name") // all values matching a path
package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/yamlmerge/ir"

	"github.com/expr-lang/expr"
)

// Eval evaluates expression with the fields of doc as variables and returns
// the result as a node. Variables missing from doc evaluate to nil.
func Eval(doc *ir.Node, expression string) (*ir.Node, error) {
	env := map[string]any{}
	if doc.Type == ir.ObjectType {
		env = ToJSONAny(doc).(map[string]any)
	}
	opts := append(exprOpts(doc), expr.Env(env), expr.AllowUndefinedVariables())
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", expression, err)
	}
	res, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", expression, err)
	}
	return FromJSONAny(res)
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetKPath(path)
			if errors.Is(err, ir.ErrNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return ToJSONAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			nodes, err := doc.ListKPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, node := range nodes {
				res[i] = ToJSONAny(node)
			}
			return res, nil
		},
			new(func(string) []any)),
	}
}
