package value

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Object maps string keys to values. The zero Object is empty and ready to
// use.
//
// Iteration is in key order. That order is an implementation detail:
// equality does not depend on it and neither should callers.
type Object struct {
	fields map[string]*Value
}

func NewObject() *Object {
	return &Object{}
}

// At returns the value stored under key, first storing an empty value if
// key is absent. Unlike the read-only methods, At needs a non-nil receiver
// since it may add the key.
func (o *Object) At(key string) *Value {
	if v, ok := o.fields[key]; ok {
		return v
	}
	if o.fields == nil {
		o.fields = map[string]*Value{}
	}
	v := &Value{}
	o.fields[key] = v
	return v
}

// Get returns the value stored under key. Unlike At it never adds key.
func (o *Object) Get(key string) (*Value, error) {
	if o != nil {
		if v, ok := o.fields[key]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.fields[key]
	return ok
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

func (o *Object) IsEmpty() bool {
	return o.Len() == 0
}

// Keys returns the keys in iteration order.
func (o *Object) Keys() []string {
	if o.Len() == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(o.fields))
}

func (o *Object) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, k := range o.Keys() {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}

// Equal reports whether o and p have the same keys with equal values under
// each key.
func (o *Object) Equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	if o.Len() == 0 {
		return true
	}
	for k, v := range o.fields {
		pv, ok := p.fields[k]
		if !ok || !v.Equal(pv) {
			return false
		}
	}
	return true
}

func (o *Object) Clone() *Object {
	res := &Object{}
	if o.Len() == 0 {
		return res
	}
	res.fields = make(map[string]*Value, len(o.fields))
	for k, v := range o.fields {
		res.fields[k] = v.Clone()
	}
	return res
}
