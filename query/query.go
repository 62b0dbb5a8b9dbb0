package query

import (
	"fmt"
	"maps"
	"os"

	"github.com/nepridumalnik/lazyjson/debug"
	"github.com/nepridumalnik/lazyjson/encode"
	"github.com/nepridumalnik/lazyjson/native"
	"github.com/nepridumalnik/lazyjson/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DocName is the environment name under which the whole document is bound.
const DocName = "doc"

// Query is a compiled expression which can be evaluated against documents
// with the same top-level keys as the one it was compiled for.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles expression against the environment of doc.
func Compile(doc *value.Value, expression string) (*Query, error) {
	env, err := Env(doc)
	if err != nil {
		return nil, err
	}
	prg, err := expr.Compile(expression, exprOpts(env)...)
	if err != nil {
		return nil, err
	}
	return &Query{src: expression, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

// Run evaluates q against doc and returns the result as a new document.
func (q *Query) Run(doc *value.Value) (*value.Value, error) {
	env, err := Env(doc)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %q returned %T\n", q.src, res)
	}
	v, err := native.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("query %q result: %w", q.src, err)
	}
	return v, nil
}

// Eval compiles and runs expression against doc.
func Eval(doc *value.Value, expression string) (*value.Value, error) {
	q, err := Compile(doc, expression)
	if err != nil {
		return nil, err
	}
	return q.Run(doc)
}

// Env returns the expression environment for doc: the top-level fields of
// an object document, plus the whole document under DocName unless a field
// of that name exists.
func Env(doc *value.Value) (map[string]any, error) {
	a, err := native.ToAny(doc)
	if err != nil {
		return nil, err
	}
	// env is a fresh map so that binding the document never makes it
	// contain itself.
	env := map[string]any{}
	if m, ok := a.(map[string]any); ok {
		env = make(map[string]any, len(m)+1)
		maps.Copy(env, m)
	}
	if _, exists := env[DocName]; !exists {
		env[DocName] = a
	}
	return env, nil
}

func exprOpts(env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("kind", func(params ...any) (any, error) {
			v, err := native.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return v.Kind().String(), nil
		},
			new(func(any) string)),
		expr.Function("render", func(params ...any) (any, error) {
			v, err := native.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return encode.ToString(v)
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
