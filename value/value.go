package value

import (
	"fmt"
)

// Alternative is the closed set of types a Value can hold. Any other type
// argument to the generic accessors is rejected by the compiler.
type Alternative interface {
	int64 | float64 | bool | string | Object | Array
}

// Value holds at most one Alternative. The zero Value is empty.
//
// Only the payload field matching kind is ever populated; every other field
// is left at its zero value. Values must be copied with Clone or CloneTo:
// a plain struct copy shares the storage of nested containers.
type Value struct {
	kind Kind

	i   int64
	f   float64
	b   bool
	s   string
	obj Object
	arr Array
}

// New constructs a Value holding x. Composite alternatives are deep-copied.
func New[T Alternative](x T) *Value {
	v := &Value{}
	Set(v, x)
	return v
}

func FromInt(i int64) *Value     { return New(i) }
func FromFloat(f float64) *Value { return New(f) }
func FromBool(b bool) *Value     { return New(b) }
func FromString(s string) *Value { return New(s) }

// FromObject returns a Value holding a deep copy of o.
func FromObject(o *Object) *Value {
	v := &Value{}
	v.obj = *o.Clone()
	v.kind = ObjectKind
	return v
}

// FromArray returns a Value holding a deep copy of a.  Since the copy is
// taken before anything is stored, a may be (or contain) the array the
// result is later appended to.
func FromArray(a *Array) *Value {
	v := &Value{}
	v.arr = *a.Clone()
	v.kind = ArrayKind
	return v
}

// Set replaces whatever v holds with x.
func Set[T Alternative](v *Value, x T) {
	// x may share storage with v (e.g. Set(v, *ref) for a ref into v), so the
	// copy is taken before v is cleared.
	var next Value
	switch p := any(&x).(type) {
	case *int64:
		next.i = *p
	case *float64:
		next.f = *p
	case *bool:
		next.b = *p
	case *string:
		next.s = *p
	case *Object:
		next.obj = *p.Clone()
	case *Array:
		next.arr = *p.Clone()
	}
	next.kind = kindOf[T]()
	v.Clear()
	*v = next
}

// Get returns the active alternative as a T. Composite alternatives are
// returned as deep copies; use Ref to modify them in place.
func Get[T Alternative](v *Value) (T, error) {
	var res T
	p, err := Ref[T](v)
	if err != nil {
		return res, err
	}
	switch r := any(&res).(type) {
	case *Object:
		*r = *v.obj.Clone()
	case *Array:
		*r = *v.arr.Clone()
	default:
		res = *p
	}
	return res, nil
}

// Ref returns a pointer to the storage of the active alternative.
func Ref[T Alternative](v *Value) (*T, error) {
	want := kindOf[T]()
	if v.Kind() != want {
		return nil, fmt.Errorf("%w: want %s, have %s", ErrTypeMismatch, want, v.Kind())
	}
	var p any
	switch want {
	case IntKind:
		p = &v.i
	case FloatKind:
		p = &v.f
	case BoolKind:
		p = &v.b
	case StringKind:
		p = &v.s
	case ObjectKind:
		p = &v.obj
	case ArrayKind:
		p = &v.arr
	}
	return p.(*T), nil
}

// IsActive reports whether v currently holds a T.
func IsActive[T Alternative](v *Value) bool {
	return v.Kind() == kindOf[T]()
}

// EqualTo reports whether v holds a T equal to x. A different active
// alternative, or an empty v, is simply not equal.
func EqualTo[T Alternative](v *Value, x T) bool {
	if !IsActive[T](v) {
		return false
	}
	switch p := any(&x).(type) {
	case *int64:
		return v.i == *p
	case *float64:
		return v.f == *p
	case *bool:
		return v.b == *p
	case *string:
		return v.s == *p
	case *Object:
		return v.obj.Equal(p)
	case *Array:
		return v.arr.Equal(p)
	}
	return false
}

func kindOf[T Alternative]() Kind {
	switch any((*T)(nil)).(type) {
	case *int64:
		return IntKind
	case *float64:
		return FloatKind
	case *bool:
		return BoolKind
	case *string:
		return StringKind
	case *Object:
		return ObjectKind
	case *Array:
		return ArrayKind
	}
	panic("unreachable")
}

// IsValidAlternative reports whether Assign would accept x.
func IsValidAlternative(x any) bool {
	switch x := x.(type) {
	case int64, float64, bool, string, Object, Array:
		return true
	case *Object:
		return x != nil
	case *Array:
		return x != nil
	}
	return false
}

// Assign is the untyped counterpart of Set, for callers which only hold an
// any. Only the exact alternative types (and pointers to Object or Array)
// are accepted; other types, including other integer and float widths,
// fail with ErrInvalidAlternative and leave v unchanged.
func (v *Value) Assign(x any) error {
	switch x := x.(type) {
	case int64:
		Set(v, x)
	case float64:
		Set(v, x)
	case bool:
		Set(v, x)
	case string:
		Set(v, x)
	case Object:
		Set(v, x)
	case Array:
		Set(v, x)
	case *Object:
		if x == nil {
			return fmt.Errorf("%w: nil *Object", ErrInvalidAlternative)
		}
		Set(v, *x)
	case *Array:
		if x == nil {
			return fmt.Errorf("%w: nil *Array", ErrInvalidAlternative)
		}
		Set(v, *x)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidAlternative, x)
	}
	return nil
}

// Kind returns the kind of the active alternative. A nil *Value is empty.
func (v *Value) Kind() Kind {
	if v == nil {
		return EmptyKind
	}
	return v.kind
}

func (v *Value) IsEmpty() bool {
	return v.Kind() == EmptyKind
}

// Clear drops the active alternative, leaving v empty. Clearing an empty
// value does nothing.
func (v *Value) Clear() {
	if v.IsEmpty() {
		return
	}
	*v = Value{}
}

// SetObject replaces the content of v with an empty object and returns it
// for in-place population.
func (v *Value) SetObject() *Object {
	v.Clear()
	v.kind = ObjectKind
	return &v.obj
}

// SetArray replaces the content of v with an empty array and returns it
// for in-place population.
func (v *Value) SetArray() *Array {
	v.Clear()
	v.kind = ArrayKind
	return &v.arr
}

// Interface returns the active alternative as an any: int64, float64, bool,
// string, *Object or *Array. Composite results point into v. Interface
// returns nil for an empty value.
func (v *Value) Interface() any {
	switch v.Kind() {
	case IntKind:
		return v.i
	case FloatKind:
		return v.f
	case BoolKind:
		return v.b
	case StringKind:
		return v.s
	case ObjectKind:
		return &v.obj
	case ArrayKind:
		return &v.arr
	}
	return nil
}

func (v *Value) Clone() *Value {
	return v.CloneTo(&Value{})
}

// CloneTo replaces dst with a deep copy of v and returns dst.
func (v *Value) CloneTo(dst *Value) *Value {
	if v == dst {
		return dst
	}
	var c Value
	if v != nil {
		c.kind = v.kind
		switch v.kind {
		case IntKind:
			c.i = v.i
		case FloatKind:
			c.f = v.f
		case BoolKind:
			c.b = v.b
		case StringKind:
			c.s = v.s
		case ObjectKind:
			c.obj = *v.obj.Clone()
		case ArrayKind:
			c.arr = *v.arr.Clone()
		}
	}
	*dst = c
	return dst
}

// Equal reports whether v and o are both empty, or hold the same
// alternative with equal values. A nil *Value is treated as empty.
func (v *Value) Equal(o *Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case IntKind:
		return v.i == o.i
	case FloatKind:
		return v.f == o.f
	case BoolKind:
		return v.b == o.b
	case StringKind:
		return v.s == o.s
	case ObjectKind:
		return v.obj.Equal(&o.obj)
	case ArrayKind:
		return v.arr.Equal(&o.arr)
	}
	return true
}
