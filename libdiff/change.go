package libdiff

import (
	"fmt"

	"github.com/nepridumalnik/lazyjson/encode"
	"github.com/nepridumalnik/lazyjson/value"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("<op %d>", int(op))
	}
}

// Change is one difference between two documents. From is nil for an
// Insert and To is nil for a Delete.
//
// Array indices in Path refer to the target document, except the last
// index of a Delete, which is the position of the deleted element in the
// source.
type Change struct {
	Path string
	Op   Op
	From *value.Value
	To   *value.Value
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s %s", c.Path, render(c.To))
	case Delete:
		return fmt.Sprintf("- %s %s", c.Path, render(c.From))
	default:
		return fmt.Sprintf("~ %s %s -> %s", c.Path, render(c.From), render(c.To))
	}
}

func render(v *value.Value) string {
	s, err := encode.ToString(v)
	if err != nil {
		return "<" + v.Kind().String() + ">"
	}
	return s
}
