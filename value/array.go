package value

import (
	"fmt"
	"iter"
)

// Array is an ordered sequence of values. The zero Array is empty and ready
// to use. Every element is owned by the array: values passed in are copied.
type Array struct {
	values []*Value
}

// NewArray returns an array holding copies of vs, in order.
func NewArray(vs ...*Value) *Array {
	a := &Array{}
	for _, v := range vs {
		a.Append(v)
	}
	return a
}

// Append adds a copy of v at the end. A nil v appends an empty value.
func (a *Array) Append(v *Value) {
	a.values = append(a.values, v.Clone())
}

// AppendNew appends an empty value and returns it for population.
func (a *Array) AppendNew() *Value {
	v := &Value{}
	a.values = append(a.values, v)
	return v
}

// RemoveLast drops the last element, if any.
func (a *Array) RemoveLast() {
	n := len(a.values)
	if n == 0 {
		return
	}
	a.values[n-1] = nil
	a.values = a.values[:n-1]
}

func (a *Array) At(i int) (*Value, error) {
	if i < 0 || i >= a.Len() {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, a.Len())
	}
	return a.values[i], nil
}

func (a *Array) First() (*Value, error) {
	if a.IsEmpty() {
		return nil, fmt.Errorf("%w: first of empty array", ErrEmptyContainer)
	}
	return a.values[0], nil
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

func (a *Array) IsEmpty() bool {
	return a.Len() == 0
}

// Clear removes every element. Clearing a nil array does nothing.
func (a *Array) Clear() {
	if a == nil {
		return
	}
	clear(a.values)
	a.values = a.values[:0]
}

// All yields index, element pairs front to back.
func (a *Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(i, a.values[i]) {
				return
			}
		}
	}
}

// Backward yields index, element pairs back to front.
func (a *Array) Backward() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := a.Len() - 1; i >= 0; i-- {
			if !yield(i, a.values[i]) {
				return
			}
		}
	}
}

func (a *Array) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether a and b have the same length and pairwise equal
// elements.
func (a *Array) Equal(b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !a.values[i].Equal(b.values[i]) {
			return false
		}
	}
	return true
}

func (a *Array) Clone() *Array {
	res := &Array{}
	if a.Len() == 0 {
		return res
	}
	res.values = make([]*Value, len(a.values))
	for i, v := range a.values {
		res.values[i] = v.Clone()
	}
	return res
}
