package native

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/nepridumalnik/lazyjson/debug"
	"github.com/nepridumalnik/lazyjson/value"
)

// FromAny converts a decoded Go value into a document.
//
// Every signed and unsigned integer width maps to an int64 alternative;
// unsigned values above math.MaxInt64 become floats. float32 is widened.
// json.Number becomes an int when it parses as one and a float otherwise.
// Objects may be map[string]any, map[any]any with string keys, or a
// yaml.MapSlice. nil anywhere in the tree fails with ErrUnsupported since a
// document has no null.
func FromAny(x any) (*value.Value, error) {
	v := &value.Value{}
	if err := fromAny(v, x, "$"); err != nil {
		return nil, err
	}
	return v, nil
}

func fromAny(dst *value.Value, x any, path string) error {
	if debug.Convert() {
		debug.Logf("convert %s at %s\n", fmt.Sprintf("%T", x), path)
	}
	switch x := x.(type) {
	case nil:
		return fmt.Errorf("%w: null at %s", ErrUnsupported, path)
	case *value.Value:
		if x == nil || x.IsEmpty() {
			return fmt.Errorf("%w: empty value at %s", ErrUnsupported, path)
		}
		x.CloneTo(dst)
	case int:
		value.Set(dst, int64(x))
	case int8:
		value.Set(dst, int64(x))
	case int16:
		value.Set(dst, int64(x))
	case int32:
		value.Set(dst, int64(x))
	case int64:
		value.Set(dst, x)
	case uint:
		setUint(dst, uint64(x))
	case uint8:
		setUint(dst, uint64(x))
	case uint16:
		setUint(dst, uint64(x))
	case uint32:
		setUint(dst, uint64(x))
	case uint64:
		setUint(dst, x)
	case float32:
		value.Set(dst, float64(x))
	case float64:
		value.Set(dst, x)
	case bool:
		value.Set(dst, x)
	case string:
		value.Set(dst, x)
	case json.Number:
		return setNumber(dst, x, path)
	case []any:
		arr := dst.SetArray()
		for i, e := range x {
			if err := fromAny(arr.AppendNew(), e, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case map[string]any:
		obj := dst.SetObject()
		for k, e := range x {
			if err := fromAny(obj.At(k), e, path+"."+k); err != nil {
				return err
			}
		}
	case map[any]any:
		obj := dst.SetObject()
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return fmt.Errorf("%w: %T key at %s", ErrUnsupported, k, path)
			}
			if err := fromAny(obj.At(ks), e, path+"."+ks); err != nil {
				return err
			}
		}
	case yaml.MapSlice:
		obj := dst.SetObject()
		for _, item := range x {
			ks, ok := item.Key.(string)
			if !ok {
				return fmt.Errorf("%w: %T key at %s", ErrUnsupported, item.Key, path)
			}
			if err := fromAny(obj.At(ks), item.Value, path+"."+ks); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %T at %s", ErrUnsupported, x, path)
	}
	return nil
}

func setUint(dst *value.Value, u uint64) {
	if u > math.MaxInt64 {
		value.Set(dst, float64(u))
		return
	}
	value.Set(dst, int64(u))
}

func setNumber(dst *value.Value, n json.Number, path string) error {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		value.Set(dst, i)
		return nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return fmt.Errorf("%w: number %q at %s: %w", ErrDecode, n, path, err)
	}
	value.Set(dst, f)
	return nil
}
