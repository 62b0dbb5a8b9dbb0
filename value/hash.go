package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value. Values which are Equal hash
// the same within a process; hashes are not stable across processes.
func (v *Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	v.hashTo(&h)
	return h.Sum64()
}

func (v *Value) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(v.Kind()))

	var b [8]byte
	switch v.Kind() {
	case EmptyKind:
	case BoolKind:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntKind:
		binary.LittleEndian.PutUint64(b[:], uint64(v.i))
		h.Write(b[:])
	case FloatKind:
		f := v.f
		if f == 0 {
			// -0 == +0
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringKind:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.s)))
		h.Write(b[:])
		h.WriteString(v.s)
	case ArrayKind:
		binary.LittleEndian.PutUint64(b[:], uint64(v.arr.Len()))
		h.Write(b[:])
		for _, e := range v.arr.values {
			e.hashTo(h)
		}
	case ObjectKind:
		binary.LittleEndian.PutUint64(b[:], uint64(v.obj.Len()))
		h.Write(b[:])
		// key order makes this independent of insertion history
		for k, e := range v.obj.All() {
			binary.LittleEndian.PutUint64(b[:], uint64(len(k)))
			h.Write(b[:])
			h.WriteString(k)
			e.hashTo(h)
		}
	}
}
