// Package value provides the in-memory document model of lazyjson.
//
// # Overview
//
// A document is a tree of Values. A Value is a tagged union which holds at
// most one alternative out of a closed set:
//
//   - int64
//   - float64
//   - bool
//   - string
//   - Object: string keys mapped to Values
//   - Array: an ordered sequence of Values
//
// Since Object and Array are themselves alternatives, documents nest to any
// depth.
//
// A Value holding nothing is empty. The zero Value is empty, and Clear
// returns a Value to that state. Empty is a state of its own: it is not
// null, and it is not any alternative.
//
// # Typed Access
//
// The alternative set is expressed by the Alternative type constraint, so
// the generic functions below only compile for the six alternative types:
//
//	v := value.New(int64(42))
//	value.IsActive[int64](v)     // true
//	i, err := value.Get[int64](v) // 42, nil
//	_, err = value.Get[string](v) // ErrTypeMismatch
//	value.Set(v, "hello")         // v now holds a string
//
// Passing, say, an int or a float32 to New or Set is a compile error.
// Callers which only have an any (for example a decoder) use Assign, which
// performs the same check at run time and fails with ErrInvalidAlternative.
//
// Get returns composite alternatives as copies. To modify a nested
// container in place, use Ref:
//
//	obj, err := value.Ref[value.Object](v)
//	value.Set(obj.At("key"), true)
//
// # Ownership
//
// Every Value exclusively owns its alternative and every container owns its
// elements. Anything passed into the model (New, Set, Assign, Array.Append,
// FromObject, FromArray) is deep-copied, so there are no shared subtrees and
// no cycles:
//
//	arr := value.NewArray(value.FromInt(1))
//	arr.Append(value.FromArray(arr)) // [1,[1]]
//
// Clone and CloneTo deep-copy a Value. Do not copy a Value by assignment:
// the copy would share the storage of nested containers.
//
// # Objects
//
// Object.At is the only way to add a key: it returns the value under the
// key, storing an empty value first if needed. Object.Get never adds keys
// and fails with ErrKeyNotFound instead. There is no deletion.
//
// Two objects are equal when they have the same key set and equal values
// under each key, regardless of the order keys were added in.
//
// # Errors
//
// Misuse fails at the point of misuse with one of the sentinel errors in
// this package, wrapped with details; test for them with errors.Is.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent mutation. Guard a document
// tree with a single lock at its root if it must be shared.
package value
