package native

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/nepridumalnik/lazyjson/encode"
	"github.com/nepridumalnik/lazyjson/format"
	"github.com/nepridumalnik/lazyjson/value"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 3, `3`},
		{"int8", int8(-3), `-3`},
		{"uint16", uint16(7), `7`},
		{"uint64 big", uint64(math.MaxUint64), `18446744073709551616.000000`},
		{"float32", float32(0.5), `0.500000`},
		{"number int", json.Number("12"), `12`},
		{"number float", json.Number("1.5e1"), `15.000000`},
		{"string", "x", `"x"`},
		{"bool", true, `true`},
		{"slice", []any{1, "a", false}, `[1,"a",false]`},
		{"map", map[string]any{"k": []any{}}, `{"k":[]}`},
		{"any map", map[any]any{"k": 1.25}, `{"k":1.250000}`},
		{"map slice", yaml.MapSlice{{Key: "a", Value: 1}}, `{"a":1}`},
		{"value", value.FromInt(9), `9`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromAny(tt.in)
			if err != nil {
				t.Fatalf("FromAny() error = %v", err)
			}
			if got := encode.MustString(v); got != tt.want {
				t.Errorf("FromAny() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"nested nil", map[string]any{"a": []any{1, nil}}},
		{"int key", map[any]any{1: "x"}},
		{"chan", make(chan int)},
		{"empty value", &value.Value{}},
		{"struct", struct{}{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromAny(tt.in); !errors.Is(err, ErrUnsupported) {
				t.Errorf("FromAny() error = %v, want ErrUnsupported", err)
			}
		})
	}
}

func TestToAny(t *testing.T) {
	v := &value.Value{}
	obj := v.SetObject()
	value.Set(obj.At("i"), int64(1))
	value.Set(obj.At("f"), 2.5)
	arr := obj.At("a").SetArray()
	arr.Append(value.FromString("s"))
	arr.Append(value.FromBool(true))

	got, err := ToAny(v)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"i": int64(1),
		"f": 2.5,
		"a": []any{"s", true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny() mismatch (-want +got):\n%s", diff)
	}

	back, err := FromAny(got)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Errorf("FromAny(ToAny(v)) != v")
	}

	arr.AppendNew()
	if _, err := ToAny(v); !errors.Is(err, value.ErrInvalidState) {
		t.Errorf("ToAny() with empty error = %v", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	v := value.FromArray(value.NewArray(
		value.FromString("a\"b"),
		value.FromFloat(0.1),
		value.FromInt(-2),
	))
	d, err := MarshalJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `["a\"b",0.1,-2]`; got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestMarshalJSONKeepsKinds(t *testing.T) {
	v := value.FromArray(value.NewArray(
		value.FromFloat(2),
		value.FromFloat(1e21),
		value.FromInt(2),
	))
	d, err := MarshalJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `[2.0,1e+21,2]`; got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
	back, err := Decode(d, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Errorf("Decode(MarshalJSON(v)) = %s", encode.MustString(back))
	}

	if _, err := MarshalJSON(value.FromFloat(math.Inf(1))); err == nil {
		t.Errorf("MarshalJSON(+Inf) succeeded")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		f    format.Format
		in   string
		want string
	}{
		{"json array", format.JSONFormat, `[1, "some text", false, 1.0123]`, `[1,"some text",false,1.012300]`},
		{"json object", format.JSONFormat, `{"array": [1]}` + "\n", `{"array":[1]}`},
		{"json big int", format.JSONFormat, `9223372036854775807`, `9223372036854775807`},
		{"yaml", format.YAMLFormat, "array:\n- 1\n- some text\n- false\n", `{"array":[1,"some text",false]}`},
		{"yaml flow", format.YAMLFormat, `[1, 2.5]`, `[1,2.500000]`},
		{"ir", format.IRFormat, `{"kind":"Int","int":4}`, `4`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode([]byte(tt.in), tt.f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := encode.MustString(v); got != tt.want {
				t.Errorf("Decode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		f    format.Format
		in   string
		err  error
	}{
		{"json syntax", format.JSONFormat, `[1,`, ErrDecode},
		{"json trailing", format.JSONFormat, `[1] [2]`, ErrDecode},
		{"json null", format.JSONFormat, `{"a":null}`, ErrUnsupported},
		{"yaml null", format.YAMLFormat, "a: ~\n", ErrUnsupported},
		{"bad format", format.Format(9), `1`, format.ErrBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.in), tt.f); !errors.Is(err, tt.err) {
				t.Errorf("Decode() error = %v, want %v", err, tt.err)
			}
		})
	}
}
