package components

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/parallel"
)

// ConnectedComponents labels every vertex with the root id of its weakly
// connected component: u and v share a label iff an undirected path joins
// them.
func ConnectedComponents(g *core.CSRGraph, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumVertices()
	if uint64(n) > MaxElements {
		return nil, fmt.Errorf("%w: %d", ErrTooManyVertices, n)
	}
	if err := checkCtx(o.Ctx); err != nil {
		return nil, err
	}
	cfg := o.Parallel.Normalize()

	uf := NewUnionFind(n)
	var merges atomic.Int64
	parallel.For(n, cfg, func(w, lo, hi int) {
		var local int64
		for u := lo; u < hi; u++ {
			for _, v := range g.Neighbors(u) {
				if uf.Union(u, v) {
					local++
				}
			}
		}
		merges.Add(local)
		o.Monitor.Record(w, int64(g.Offsets()[hi]-g.Offsets()[lo]))
	})
	if err := checkCtx(o.Ctx); err != nil {
		return nil, err
	}

	uf.Flatten(cfg)
	labels := make([]int, n)
	parallel.For(n, cfg, func(_, lo, hi int) {
		for v := lo; v < hi; v++ {
			labels[v] = uf.Find(v)
		}
	})
	o.Logger.WithFields(logrus.Fields{
		"vertices":   n,
		"merges":     merges.Load(),
		"components": n - int(merges.Load()),
	}).Debug("components: done")

	return labels, nil
}

// Relabel maps labels to dense ids 0..k-1 in order of first appearance and
// returns them with k. Equal labels map to equal ids.
func Relabel(labels []int) ([]int, int) {
	ids := make(map[int]int)
	out := make([]int, len(labels))
	for v, l := range labels {
		id, ok := ids[l]
		if !ok {
			id = len(ids)
			ids[l] = id
		}
		out[v] = id
	}

	return out, len(ids)
}

// Count returns the number of distinct labels.
func Count(labels []int) int {
	_, k := Relabel(labels)
	return k
}

// Sizes returns the number of vertices carrying each label.
func Sizes(labels []int) map[int]int {
	sizes := make(map[int]int)
	for _, l := range labels {
		sizes[l]++
	}

	return sizes
}

// Largest returns the vertices of the biggest component in ascending order.
// Ties go to the component whose first vertex has the lowest id.
func Largest(labels []int) []int {
	dense, k := Relabel(labels)
	if k == 0 {
		return nil
	}
	counts := make([]int, k)
	for _, id := range dense {
		counts[id]++
	}
	best := 0
	for id := 1; id < k; id++ {
		if counts[id] > counts[best] {
			best = id
		}
	}
	out := make([]int, 0, counts[best])
	for v, id := range dense {
		if id == best {
			out = append(out, v)
		}
	}

	return out
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
