package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nepridumalnik/lazyjson/encode"
	"github.com/nepridumalnik/lazyjson/value"
)

var out io.Writer = os.Stderr

// Value wraps a value so that it prints in text form with %s or %v.
type Value struct{ *value.Value }

func (v Value) String() string {
	s, err := encode.ToString(v.Value)
	if err != nil {
		return fmt.Sprintf("[raw *value.Value %s] %v", v.Kind(), err)
	}
	return s
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *value.Value:
			args[i] = Value{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
