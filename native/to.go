package native

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nepridumalnik/lazyjson/value"
)

// ToAny converts a document to plain Go values: int64, float64, bool,
// string, map[string]any and []any. It fails with value.ErrInvalidState if
// the document contains an empty value.
func ToAny(v *value.Value) (any, error) {
	return toAny(v, "$", false)
}

// MarshalJSON encodes v as standard, escaped JSON. Unlike the encode
// package, strings are escaped and floats use the shortest representation,
// so the output is suitable for other JSON tools. Integral floats keep a
// fractional part so that decoding the output with Decode gives back the
// same kinds.
func MarshalJSON(v *value.Value) ([]byte, error) {
	a, err := toAny(v, "$", true)
	if err != nil {
		return nil, err
	}
	return json.Marshal(a)
}

func toAny(v *value.Value, path string, numbers bool) (any, error) {
	switch x := v.Interface().(type) {
	case nil:
		return nil, fmt.Errorf("%w: empty value at %s", value.ErrInvalidState, path)
	case *value.Object:
		res := make(map[string]any, x.Len())
		for k, e := range x.All() {
			a, err := toAny(e, path+"."+k, numbers)
			if err != nil {
				return nil, err
			}
			res[k] = a
		}
		return res, nil
	case *value.Array:
		res := make([]any, 0, x.Len())
		for i, e := range x.All() {
			a, err := toAny(e, fmt.Sprintf("%s[%d]", path, i), numbers)
			if err != nil {
				return nil, err
			}
			res = append(res, a)
		}
		return res, nil
	case float64:
		if numbers {
			return floatNumber(x), nil
		}
		return x, nil
	default:
		return x, nil
	}
}

func floatNumber(f float64) json.Number {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return json.Number(s)
}
