// Package query evaluates github.com/expr-lang/expr expressions over
// documents.
//
// The fields of an object document are variables of the expression, and
// the whole document is available as doc:
//
//	v, err := query.Eval(d, `len(array) > 2 ? array[1] : "none"`)
//
// Besides the expr builtins, expressions may call kind(x), which names the
// document kind of x, render(x), which serializes x, and getenv(name).
package query
