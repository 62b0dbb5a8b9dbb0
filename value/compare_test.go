package value

import (
	"math"
	"testing"
)

func obj(kvs ...any) *Value {
	v := &Value{}
	o := v.SetObject()
	for i := 0; i < len(kvs); i += 2 {
		kvs[i+1].(*Value).CloneTo(o.At(kvs[i].(string)))
	}
	return v
}

func arr(vs ...*Value) *Value {
	return FromArray(NewArray(vs...))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected int
	}{
		// Kind ranking: Empty < Bool < Int < Float < String < Array < Object
		{"Empty < Bool", &Value{}, FromBool(false), -1},
		{"Bool < Int", FromBool(true), FromInt(1), -1},
		{"Int < Float", FromInt(2), FromFloat(1.0), -1},
		{"Float < String", FromFloat(1), FromString("a"), -1},
		{"String < Array", FromString("a"), arr(), -1},
		{"Array < Object", arr(), obj(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"NaN == NaN", FromFloat(math.NaN()), FromFloat(math.NaN()), 0},
		{"String < String", FromString("a"), FromString("b"), -1},
		{"Empty == Empty", &Value{}, nil, 0},

		{"Empty Array == Empty Array", arr(), arr(), 0},
		{"Short Array < Long Array", arr(FromInt(1)), arr(FromInt(1), FromInt(2)), -1},
		{"Array Element Comparison", arr(FromInt(1)), arr(FromInt(2)), -1},

		{"Empty Object == Empty Object", obj(), obj(), 0},
		{"Short Object < Long Object", obj("a", FromInt(1)), obj("a", FromInt(1), "b", FromInt(2)), -1},
		{"Object Key Comparison", obj("a", FromInt(1)), obj("b", FromInt(1)), -1},
		{"Object Value Comparison", obj("a", FromInt(1)), obj("a", FromInt(2)), -1},
		{"Object Order Independent", obj("a", FromInt(1), "b", FromInt(2)), obj("b", FromInt(2), "a", FromInt(1)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}
