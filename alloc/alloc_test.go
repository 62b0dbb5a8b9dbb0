package alloc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeCounter struct {
	snaps []Stats
	i     int
}

func (f *fakeCounter) Snapshot() Stats {
	s := f.snaps[f.i]
	f.i++
	return s
}

func TestMeasureWith(t *testing.T) {
	c := &fakeCounter{snaps: []Stats{
		{Mallocs: 10, Frees: 4, TotalAlloc: 100},
		{Mallocs: 15, Frees: 9, TotalAlloc: 180},
	}}
	ran := false
	got := MeasureWith(c, func() { ran = true })
	if !ran {
		t.Fatalf("fn not called")
	}
	want := Stats{Mallocs: 5, Frees: 5, TotalAlloc: 80}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MeasureWith() mismatch (-want +got):\n%s", diff)
	}
	if got.Live() != 0 {
		t.Errorf("Live() = %d", got.Live())
	}
	if got.String() != "mallocs=5 frees=5 bytes=80" {
		t.Errorf("String() = %s", got)
	}
}

var sink []*int

func TestMeasure(t *testing.T) {
	st := Measure(func() {
		for i := range 100 {
			p := new(int)
			*p = i
			sink = append(sink, p)
		}
	})
	if st.Mallocs < 100 {
		t.Errorf("Mallocs = %d, want >= 100", st.Mallocs)
	}
	if st.TotalAlloc == 0 {
		t.Errorf("TotalAlloc = 0")
	}
	sink = nil
}
