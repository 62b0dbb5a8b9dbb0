package value

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values of different kinds order by kind rank. Floats compare with
// cmp.Compare, so unlike Equal a NaN compares equal to itself.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	rankA := rank(a.Kind())
	rankB := rank(b.Kind())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind() {
	case IntKind:
		return cmp.Compare(a.i, b.i)
	case FloatKind:
		return cmp.Compare(a.f, b.f)
	case StringKind:
		return strings.Compare(a.s, b.s)
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ArrayKind:
		return compareArrays(&a.arr, &b.arr)
	case ObjectKind:
		return compareObjects(&a.obj, &b.obj)
	}
	return 0
}

// rank returns the sorting rank of a kind.
// Order: Empty < Bool < Int < Float < String < Array < Object
func rank(k Kind) int {
	switch k {
	case EmptyKind:
		return 0
	case BoolKind:
		return 1
	case IntKind:
		return 2
	case FloatKind:
		return 3
	case StringKind:
		return 4
	case ArrayKind:
		return 5
	case ObjectKind:
		return 6
	}
	return 100
}

func compareArrays(a, b *Array) int {
	lenA := a.Len()
	lenB := b.Len()
	for i := range min(lenA, lenB) {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// objects compare as their (key, value) sequences in key order.
func compareObjects(a, b *Object) int {
	keysA := a.Keys()
	keysB := b.Keys()
	for i := range min(len(keysA), len(keysB)) {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a.fields[keysA[i]], b.fields[keysB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
