package components

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/parlath/parallel"
)

// MaxElements is the largest size a UnionFind can hold.
const MaxElements = math.MaxUint32

// UnionFind is a disjoint-set forest safe for concurrent Find and Union.
type UnionFind struct {
	words []atomic.Uint64
}

func pack(parent, rank uint32) uint64 { return uint64(rank)<<32 | uint64(parent) }
func parentOf(w uint64) uint32 { return uint32(w) }
func rankOf(w uint64) uint32 { return uint32(w >> 32) }

// NewUnionFind creates n singleton sets. Panics if n is negative or above
// MaxElements.
func NewUnionFind(n int) *UnionFind {
	if n < 0 || uint64(n) > MaxElements {
		panic(fmt.Sprintf("components: NewUnionFind(%d) out of range", n))
	}
	uf := &UnionFind{words: make([]atomic.Uint64, n)}
	for i := range uf.words {
		uf.words[i].Store(pack(uint32(i), 0))
	}

	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.words) }

// Find returns the root of x's set.
func (uf *UnionFind) Find(x int) int {
	v := uint32(x)
	for {
		w := uf.words[v].Load()
		p := parentOf(w)
		if p == v {
			return int(v)
		}
		gp := parentOf(uf.words[p].Load())
		if gp != p {
			uf.words[v].CompareAndSwap(w, pack(gp, rankOf(w)))
		}
		v = gp
	}
}

// Union merges the sets of a and b. It reports false if they already shared
// a root.
func (uf *UnionFind) Union(a, b int) bool {
	for {
		ra, rb := uint32(uf.Find(a)), uint32(uf.Find(b))
		if ra == rb {
			return false
		}
		wa, wb := uf.words[ra].Load(), uf.words[rb].Load()
		if parentOf(wa) != ra || parentOf(wb) != rb {
			continue
		}
		ka, kb := rankOf(wa), rankOf(wb)
		if ka > kb || (ka == kb && ra > rb) {
			ra, rb = rb, ra
			wa, wb = wb, wa
			ka, kb = kb, ka
		}
		// (ka, ra) < (kb, rb): hang ra below rb
		if !uf.words[ra].CompareAndSwap(wa, pack(rb, ka)) {
			continue
		}
		if ka == kb {
			uf.words[rb].CompareAndSwap(wb, pack(rb, kb+1))
		}

		return true
	}
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	for {
		ra, rb := uf.Find(a), uf.Find(b)
		if ra == rb {
			return true
		}
		// ra still a root means the answer held at the moment of this load
		if parentOf(uf.words[ra].Load()) == uint32(ra) {
			return false
		}
	}
}

// Flatten points every element directly at its root. It must not overlap
// with Union.
func (uf *UnionFind) Flatten(cfg parallel.Config) {
	parallel.For(len(uf.words), cfg, func(_, lo, hi int) {
		for v := lo; v < hi; v++ {
			r := uint32(uf.Find(v))
			w := uf.words[v].Load()
			if parentOf(w) != r {
				uf.words[v].Store(pack(r, rankOf(w)))
			}
		}
	})
}

// Sets returns the number of disjoint sets.
func (uf *UnionFind) Sets() int {
	n := 0
	for v := range uf.words {
		if parentOf(uf.words[v].Load()) == uint32(v) {
			n++
		}
	}

	return n
}
