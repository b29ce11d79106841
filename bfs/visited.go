package bfs

import "sync/atomic"

// VisitedSet is a fixed-size set of vertex flags shared by concurrent
// workers. Each flag makes exactly one false→true transition, and only the
// caller of TryClaim that performs it observes true.
type VisitedSet struct {
	flags []atomic.Bool
}

// NewVisitedSet returns a set over [0, n) with every flag clear.
func NewVisitedSet(n int) *VisitedSet {
	return &VisitedSet{flags: make([]atomic.Bool, n)}
}

// TryClaim sets v's flag and reports whether this call set it.
// The plain load first keeps already-visited hubs from bouncing cache lines.
func (s *VisitedSet) TryClaim(v int) bool {
	f := &s.flags[v]
	if f.Load() {
		return false
	}

	return f.CompareAndSwap(false, true)
}

// Contains reports whether v has been claimed.
func (s *VisitedSet) Contains(v int) bool { return s.flags[v].Load() }

// Len returns the capacity of the set.
func (s *VisitedSet) Len() int { return len(s.flags) }

// Count returns the number of claimed vertices.
func (s *VisitedSet) Count() int {
	c := 0
	for i := range s.flags {
		if s.flags[i].Load() {
			c++
		}
	}

	return c
}
