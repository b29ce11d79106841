package deltastep

import (
	"math"
	"sync/atomic"
)

// distances is an array of float32 cells updated by compare-and-swap.
type distances []atomic.Uint32

func newDistances(n int) distances {
	d := make(distances, n)
	inf := math.Float32bits(float32(math.Inf(1)))
	for i := range d {
		d[i].Store(inf)
	}

	return d
}

func (d distances) load(v int) float32 {
	return math.Float32frombits(d[v].Load())
}

func (d distances) store(v int, x float32) {
	d[v].Store(math.Float32bits(x))
}

// relaxMin lowers d[v] to x if x is smaller and reports whether it did.
// Concurrent callers on the same v converge to the minimum of their values.
func (d distances) relaxMin(v int, x float32) bool {
	cell := &d[v]
	for {
		old := cell.Load()
		if x >= math.Float32frombits(old) {
			return false
		}
		if cell.CompareAndSwap(old, math.Float32bits(x)) {
			return true
		}
	}
}

func (d distances) snapshot() []float32 {
	out := make([]float32, len(d))
	for i := range d {
		out[i] = d.load(i)
	}

	return out
}
