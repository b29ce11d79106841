package pagerank

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/parallel"
)

// PageRank runs exactly iterations power iterations from the uniform vector
// and returns one score per vertex.
//
//	rank'[v] = (1-d)/N + d·( Σ_{u→v} rank[u]/outdeg(u) + dangling/N )
//
// dangling is the rank of vertices without out-edges (0 when redistribution is
// disabled). Each iteration reads the previous vector and writes a fresh one.
func PageRank(g *core.CSRGraph, iterations int, damping float64, opts ...Option) ([]float64, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadIterations, iterations)
	}
	e, err := newEngine(g, damping, opts)
	if err != nil {
		return nil, err
	}
	if e.n == 0 {
		return e.rank, nil
	}
	for it := 1; it <= iterations; it++ {
		if err = checkCtx(e.opts.Ctx); err != nil {
			return nil, err
		}
		e.step(it)
	}

	return e.rank, nil
}

// UntilConvergence iterates until max_v |rank'[v]-rank[v]| < epsilon or
// MaxIterations is reached, and returns the scores with the number of
// iterations performed.
func UntilConvergence(g *core.CSRGraph, damping, epsilon float64, opts ...Option) ([]float64, int, error) {
	if !(epsilon > 0) {
		return nil, 0, fmt.Errorf("%w: %v", ErrBadEpsilon, epsilon)
	}
	e, err := newEngine(g, damping, opts)
	if err != nil {
		return nil, 0, err
	}
	if e.n == 0 {
		return e.rank, 0, nil
	}
	for it := 1; it <= e.opts.MaxIterations; it++ {
		if err = checkCtx(e.opts.Ctx); err != nil {
			return nil, it - 1, err
		}
		if r := e.step(it); r.MaxDelta < epsilon {
			return e.rank, it, nil
		}
	}
	e.opts.Logger.WithField("max_iterations", e.opts.MaxIterations).
		Warn("pagerank: stopped before convergence")

	return e.rank, e.opts.MaxIterations, nil
}

// engine owns the rank vectors and per-worker scratch of one run.
type engine struct {
	g       *core.CSRGraph
	rev     *core.CSRGraph
	opts    Options
	n       int
	damping float64

	rank, next []float64
	contrib    []float64       // gather: rank[u]/outdeg(u)
	acc        []atomic.Uint64 // scatter: float64 bits

	// per-worker partial results, merged after each barrier
	partSum []float64
	partMax []float64
	partL1  []float64
}

func newEngine(g *core.CSRGraph, damping float64, opts []Option) (*engine, error) {
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
	if !(damping >= 0 && damping <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadDamping, damping)
	}
	o.Parallel = o.Parallel.Normalize()

	n := g.NumVertices()
	e := &engine{
		g:       g,
		opts:    o,
		n:       n,
		damping: damping,
		rank:    make([]float64, n),
		next:    make([]float64, n),
		partSum: make([]float64, o.Parallel.Workers),
		partMax: make([]float64, o.Parallel.Workers),
		partL1:  make([]float64, o.Parallel.Workers),
	}
	switch o.Strategy {
	case Gather:
		e.rev = o.Transpose
		if e.rev == nil {
			e.rev = g.Transpose()
		} else if e.rev.NumVertices() != n || e.rev.NumEdges() != g.NumEdges() {
			return nil, fmt.Errorf("%w: %d/%d vertices, %d/%d edges", ErrTransposeMismatch,
				e.rev.NumVertices(), n, e.rev.NumEdges(), g.NumEdges())
		}
		e.contrib = make([]float64, n)
	case Scatter:
		e.acc = make([]atomic.Uint64, n)
	}
	if n > 0 {
		start := 1 / float64(n)
		for v := range e.rank {
			e.rank[v] = start
		}
	}

	return e, nil
}

// step performs one iteration and swaps the vectors.
func (e *engine) step(it int) Iteration {
	cfg := e.opts.Parallel
	clear(e.partSum)
	clear(e.partMax)
	clear(e.partL1)

	// phase 1: dangling mass, plus per-source shares for gather
	parallel.For(e.n, cfg, func(w, lo, hi int) {
		var sink float64
		for u := lo; u < hi; u++ {
			deg := e.g.OutDegree(u)
			if deg == 0 {
				sink += e.rank[u]
				if e.contrib != nil {
					e.contrib[u] = 0
				}
				continue
			}
			if e.contrib != nil {
				e.contrib[u] = e.rank[u] / float64(deg)
			}
		}
		e.partSum[w] += sink
	})
	dangling := sum(e.partSum)

	redistributed := 0.0
	if e.opts.Dangling {
		redistributed = dangling
	}
	base := (1-e.damping)/float64(e.n) + e.damping*redistributed/float64(e.n)

	if e.opts.Strategy == Scatter {
		e.scatter()
	}

	// phase 2 (gather) or 3 (scatter): new scores and residuals
	parallel.For(e.n, cfg, func(w, lo, hi int) {
		var maxD, l1 float64
		var edges int64
		for v := lo; v < hi; v++ {
			var in float64
			if e.contrib != nil {
				src := e.rev.Neighbors(v)
				edges += int64(len(src))
				for _, u := range src {
					in += e.contrib[u]
				}
			} else {
				in = math.Float64frombits(e.acc[v].Load())
			}
			nv := base + e.damping*in
			d := math.Abs(nv - e.rank[v])
			l1 += d
			if d > maxD {
				maxD = d
			}
			e.next[v] = nv
		}
		if maxD > e.partMax[w] {
			e.partMax[w] = maxD
		}
		e.partL1[w] += l1
		e.opts.Monitor.Record(w, edges)
	})

	e.rank, e.next = e.next, e.rank
	r := Iteration{Iter: it, MaxDelta: maxOf(e.partMax), L1Delta: sum(e.partL1), DanglingMass: dangling}
	e.opts.OnIteration(r)
	e.opts.Logger.WithFields(logrus.Fields{
		"iter":      it,
		"max_delta": r.MaxDelta,
		"l1_delta":  r.L1Delta,
		"dangling":  dangling,
	}).Debug("pagerank: iteration")

	return r
}

// scatter zeroes the accumulators and pushes every vertex's share along its
// out-edges with atomic float64 adds.
func (e *engine) scatter() {
	cfg := e.opts.Parallel
	parallel.For(e.n, cfg, func(_, lo, hi int) {
		for v := lo; v < hi; v++ {
			e.acc[v].Store(0)
		}
	})
	parallel.For(e.n, cfg, func(w, lo, hi int) {
		var edges int64
		for u := lo; u < hi; u++ {
			out := e.g.Neighbors(u)
			if len(out) == 0 {
				continue
			}
			share := e.rank[u] / float64(len(out))
			for _, v := range out {
				atomicAdd(&e.acc[v], share)
			}
			edges += int64(len(out))
		}
		e.opts.Monitor.Record(w, edges)
	})
}

// atomicAdd adds x to the float64 stored in cell.
func atomicAdd(cell *atomic.Uint64, x float64) {
	for {
		old := cell.Load()
		if cell.CompareAndSwap(old, math.Float64bits(math.Float64frombits(old)+x)) {
			return
		}
	}
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}

func maxOf(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		if x > m {
			m = x
		}
	}

	return m
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
