package encode

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/nepridumalnik/lazyjson/value"
)

func sample() *value.Array {
	return value.NewArray(
		value.FromInt(1),
		value.FromString("some text"),
		value.FromBool(false),
		value.FromFloat(1.0123),
	)
}

func TestEncode(t *testing.T) {
	selfNested := sample()
	selfNested.Append(value.FromArray(selfNested))

	withArray := &value.Value{}
	value.Set(withArray.SetObject().At("array"), *sample())

	tests := []struct {
		name string
		v    *value.Value
		want string
	}{
		{"empty array", value.FromArray(value.NewArray()), `[]`},
		{"empty object", value.FromObject(value.NewObject()), `{}`},
		{"array", value.FromArray(sample()), `[1,"some text",false,1.012300]`},
		{"self nested array", value.FromArray(selfNested), `[1,"some text",false,1.012300,[1,"some text",false,1.012300]]`},
		{"object with array", withArray, `{"array":[1,"some text",false,1.012300]}`},
		{"int", value.FromInt(-42), `-42`},
		{"zero int", value.FromInt(0), `0`},
		{"max int", value.FromInt(math.MaxInt64), `9223372036854775807`},
		{"float", value.FromFloat(12345.54321), `12345.543210`},
		{"negative float", value.FromFloat(-0.5), `-0.500000`},
		{"integral float", value.FromFloat(3), `3.000000`},
		{"true", value.FromBool(true), `true`},
		{"string", value.FromString("hello"), `"hello"`},
		{"unescaped string", value.FromString("a\"b\\c\nd"), "\"a\"b\\c\nd\""},
		{"nested empties", value.FromArray(value.NewArray(
			value.FromArray(value.NewArray()),
			value.FromObject(value.NewObject()))), `[[],{}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(tt.v)
			if err != nil {
				t.Fatalf("ToString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ToString() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeObjectKeys(t *testing.T) {
	v := &value.Value{}
	obj := v.SetObject()
	value.Set(obj.At("b"), int64(2))
	value.Set(obj.At("a"), int64(1))
	value.Set(obj.At("c"), "x")
	got := MustString(v)
	// key order is unspecified; this checks every entry appears exactly once
	for _, want := range []string{`"a":1`, `"b":2`, `"c":"x"`} {
		if n := bytes.Count([]byte(got), []byte(want)); n != 1 {
			t.Errorf("%s appears %d times in %s", want, n, got)
		}
	}
	if len(got) != len(`{"a":1,"b":2,"c":"x"}`) {
		t.Errorf("unexpected output %s", got)
	}
}

func TestEncodeEmptyValue(t *testing.T) {
	nested := &value.Value{}
	arr := nested.SetObject().At("list").SetArray()
	arr.Append(value.FromInt(1))
	arr.AppendNew()

	tests := []struct {
		name string
		v    *value.Value
		path string
	}{
		{"root", &value.Value{}, "$"},
		{"nil", nil, "$"},
		{"nested", nested, "$.list[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToString(tt.v)
			if !errors.Is(err, value.ErrInvalidState) {
				t.Fatalf("ToString() error = %v, want ErrInvalidState", err)
			}
			if !bytes.Contains([]byte(err.Error()), []byte(tt.path)) {
				t.Errorf("error %q does not name %s", err, tt.path)
			}
		})
	}
}

func TestMustStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustString did not panic on empty value")
		}
	}()
	MustString(&value.Value{})
}

func TestMaxDepth(t *testing.T) {
	v := value.FromArray(value.NewArray(value.FromArray(value.NewArray(value.FromInt(1)))))
	if _, err := ToString(v, MaxDepth(2)); err != nil {
		t.Errorf("depth 2 error = %v", err)
	}
	if _, err := ToString(v, MaxDepth(1)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("depth 1 error = %v, want ErrTooDeep", err)
	}
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	v := &value.Value{}
	value.Set(v.SetObject().At("array"), *sample())
	got, err := ToString(v, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !ansi.MatchString(got) {
		t.Errorf("no color sequences in %q", got)
	}
	plain := ansi.ReplaceAllString(got, "")
	if want := `{"array":[1,"some text",false,1.012300]}`; plain != want {
		t.Errorf("uncolored output = %s, want %s", plain, want)
	}
}

func TestEncodeColorsPercent(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	got, err := ToString(value.FromString("100%d"), EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if plain := ansi.ReplaceAllString(got, ""); plain != `"100%d"` {
		t.Errorf("uncolored output = %s", plain)
	}
}
