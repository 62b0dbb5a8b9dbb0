package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nepridumalnik/lazyjson/value"
)

var ErrTooDeep = errors.New("document too deep")

type EncState struct {
	depth    int
	maxDepth int
	path     []string

	Color func(value.Kind, ColorAttr, string) string
}

// Encode writes the text form of v to w.
//
// Every value in the tree must hold an alternative: an empty value anywhere
// fails with value.ErrInvalidState. Nothing is written past the point of
// failure, but output written before it is not retracted.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(v, w, es)
}

// ToString returns the text form of v.
func ToString(v *value.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Path returns the location of the value being encoded, like $.a[2].
func (es *EncState) Path() string {
	return "$" + strings.Join(es.path, "")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, kind value.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(kind, attr, v)
}

func encode(v *value.Value, w io.Writer, es *EncState) error {
	switch x := v.Interface().(type) {
	case int64:
		return encodeInt(x, w, es)
	case float64:
		return encodeFloat(x, w, es)
	case bool:
		return encodeBool(x, w, es)
	case string:
		return encodeString(x, w, es)
	case *value.Object:
		return encodeObject(x, w, es)
	case *value.Array:
		return encodeArray(x, w, es)
	}
	return fmt.Errorf("%w: cannot encode empty value at %s", value.ErrInvalidState, es.Path())
}

func enter(es *EncState) error {
	es.depth++
	if es.maxDepth > 0 && es.depth > es.maxDepth {
		return fmt.Errorf("%w: more than %d levels at %s", ErrTooDeep, es.maxDepth, es.Path())
	}
	return nil
}

func leave(es *EncState) {
	es.depth--
}

func encodeObject(obj *value.Object, w io.Writer, es *EncState) error {
	if err := enter(es); err != nil {
		return err
	}
	defer leave(es)
	if err := writeSep(w, es, value.ObjectKind, "{"); err != nil {
		return err
	}
	i := 0
	for k, fv := range obj.All() {
		if i > 0 {
			if err := writeSep(w, es, value.ObjectKind, ","); err != nil {
				return err
			}
		}
		i++
		if err := writeField(w, k, es); err != nil {
			return err
		}
		es.path = append(es.path, "."+k)
		err := encode(fv, w, es)
		es.path = es.path[:len(es.path)-1]
		if err != nil {
			return err
		}
	}
	return writeSep(w, es, value.ObjectKind, "}")
}

func encodeArray(arr *value.Array, w io.Writer, es *EncState) error {
	if err := enter(es); err != nil {
		return err
	}
	defer leave(es)
	if err := writeSep(w, es, value.ArrayKind, "["); err != nil {
		return err
	}
	for i, av := range arr.All() {
		if i > 0 {
			if err := writeSep(w, es, value.ArrayKind, ","); err != nil {
				return err
			}
		}
		es.path = append(es.path, "["+strconv.Itoa(i)+"]")
		err := encode(av, w, es)
		es.path = es.path[:len(es.path)-1]
		if err != nil {
			return err
		}
	}
	return writeSep(w, es, value.ArrayKind, "]")
}

func writeSep(w io.Writer, es *EncState, kind value.Kind, sep string) error {
	return writeString(w, applyColor(es, kind, SepColor, sep))
}

// keys are written as-is between quotes, like string values.
func writeField(w io.Writer, f string, es *EncState) error {
	if err := writeString(w, applyColor(es, value.ObjectKind, FieldColor, `"`+f+`"`)); err != nil {
		return err
	}
	return writeSep(w, es, value.ObjectKind, ":")
}

// strings are not escaped: quotes, backslashes and control characters are
// written through unchanged.
func encodeString(s string, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, value.StringKind, ValueColor, `"`+s+`"`))
}

func encodeInt(i int64, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, value.IntKind, ValueColor, strconv.FormatInt(i, 10)))
}

// floats always have exactly six digits after the point.
func encodeFloat(f float64, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, value.FloatKind, ValueColor, strconv.FormatFloat(f, 'f', 6, 64)))
}

func encodeBool(b bool, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, value.BoolKind, ValueColor, strconv.FormatBool(b)))
}
