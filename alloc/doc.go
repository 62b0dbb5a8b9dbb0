// Package alloc measures allocations made while a function runs.
//
// The document model does not count its own allocations; tests and the
// command line tool attach a Counter from the outside instead:
//
//	st := alloc.Measure(func() { doc.Clone() })
//	fmt.Println(st.Mallocs)
package alloc
