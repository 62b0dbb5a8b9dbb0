package alloc

import (
	"fmt"
	"runtime"
)

// Stats are cumulative allocation counters, or the difference between two
// snapshots of them.
type Stats struct {
	Mallocs    uint64
	Frees      uint64
	TotalAlloc uint64
}

// Live is the number of allocations not yet freed.
func (s Stats) Live() int64 {
	return int64(s.Mallocs) - int64(s.Frees)
}

// Sub returns the counters accumulated between o and s.
func (s Stats) Sub(o Stats) Stats {
	return Stats{
		Mallocs:    s.Mallocs - o.Mallocs,
		Frees:      s.Frees - o.Frees,
		TotalAlloc: s.TotalAlloc - o.TotalAlloc,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("mallocs=%d frees=%d bytes=%d", s.Mallocs, s.Frees, s.TotalAlloc)
}

// Counter provides allocation counter snapshots.
type Counter interface {
	Snapshot() Stats
}

// Runtime counts allocations of the whole process as reported by the Go
// runtime. Other goroutines allocating concurrently are counted too.
type Runtime struct{}

func (Runtime) Snapshot() Stats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Stats{
		Mallocs:    ms.Mallocs,
		Frees:      ms.Frees,
		TotalAlloc: ms.TotalAlloc,
	}
}

// MeasureWith returns the counters c accumulated while fn ran.
func MeasureWith(c Counter, fn func()) Stats {
	before := c.Snapshot()
	fn()
	return c.Snapshot().Sub(before)
}

// Measure is MeasureWith using the runtime counters.
func Measure(fn func()) Stats {
	return MeasureWith(Runtime{}, fn)
}
