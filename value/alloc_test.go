package value

import (
	"testing"

	"github.com/nepridumalnik/lazyjson/alloc"
)

func TestCloneAllocates(t *testing.T) {
	arr := NewArray()
	for i := range 10 {
		arr.Append(FromInt(int64(i)))
	}
	v := FromArray(arr)

	var cp *Value
	st := alloc.Measure(func() { cp = v.Clone() })
	// one Value per element plus the root
	if st.Mallocs < 11 {
		t.Errorf("Clone() made %d allocations, want at least 11", st.Mallocs)
	}
	if !cp.Equal(v) {
		t.Errorf("clone differs")
	}
}
