package deltastep

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/parallel"
)

// DeltaStepping computes single-source shortest distances on a graph with
// non-negative weights. Unreachable vertices keep +Inf.
//
// Vertices are grouped in buckets of width delta by tentative distance. The
// lowest non-empty bucket is drained in rounds: every round relaxes the light
// edges (w ≤ delta) of the bucket's current members in parallel, and improved
// targets are re-bucketed at the barrier. Once the bucket stays empty the
// heavy edges (w > delta) of every vertex it held are relaxed once, in one
// more parallel phase.
//
// Concurrent relaxations of one target resolve through an atomic min, so a
// distance only ever decreases and ends at the true shortest distance.
// Bucket bookkeeping runs sequentially between phases.
func DeltaStepping(g *core.WeightedCSRGraph, source int, delta float32, opts ...Option) ([]float32, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrVertexNotFound, source, g.NumVertices())
	}
	if !(delta > 0) || math.IsInf(float64(delta), 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadDelta, delta)
	}
	o.Parallel = o.Parallel.Normalize()

	s := newSolver(g, delta, o)
	err := s.run(source)
	if o.Stats != nil {
		*o.Stats = s.stats()
	}
	if err != nil {
		return nil, err
	}

	return s.dist.snapshot(), nil
}

// SuggestDelta returns maxWeight / averageOutDegree, a common starting point
// that keeps light rounds short on random graphs. It falls back to 1 when the
// graph has no positive weights.
func SuggestDelta(g *core.WeightedCSRGraph) float32 {
	if g == nil || g.NumEdges() == 0 || g.NumVertices() == 0 {
		return 1
	}
	maxW := g.MaxWeight()
	if maxW <= 0 {
		return 1
	}
	avgDeg := float32(g.NumEdges()) / float32(g.NumVertices())
	if d := maxW / avgDeg; d > 0 && !math.IsInf(float64(d), 0) {
		return d
	}

	return 1
}

type solver struct {
	g     *core.WeightedCSRGraph
	delta float32
	opts  Options

	dist    distances
	buckets *bucketQueue
	locals  [][]int

	// roundMark dedupes a round's frontier; settledMark dedupes the set of
	// vertices whose heavy edges are pending.
	roundMark   []uint32
	settledMark []uint32
	round       uint32
	epoch       uint32

	nBuckets, lightPhases, heavyPhases int
	lightRelax, heavyRelax, improved   atomic.Int64
}

func newSolver(g *core.WeightedCSRGraph, delta float32, o Options) *solver {
	n := g.NumVertices()

	return &solver{
		g:           g,
		delta:       delta,
		opts:        o,
		dist:        newDistances(n),
		buckets:     newBucketQueue(),
		locals:      make([][]int, o.Parallel.Workers),
		roundMark:   make([]uint32, n),
		settledMark: make([]uint32, n),
	}
}

func (s *solver) bucketOf(d float32) int {
	idx := float64(d) / float64(s.delta)
	if idx >= maxBucket {
		return maxBucket
	}

	return int(idx)
}

func (s *solver) run(source int) error {
	s.dist.store(source, 0)
	s.buckets.insert(0, source)

	var frontier, settled []int
	for {
		i, ok := s.buckets.next()
		if !ok {
			return nil
		}
		s.nBuckets++
		rounds := 0
		for s.buckets.has(i) {
			s.epoch++
			settled = settled[:0]
			for s.buckets.has(i) {
				if err := checkCtx(s.opts.Ctx); err != nil {
					return err
				}
				s.round++
				frontier = frontier[:0]
				for _, v := range s.buckets.take(i) {
					if s.roundMark[v] == s.round || s.bucketOf(s.dist.load(v)) != i {
						continue // duplicate, or improved into an earlier bucket
					}
					s.roundMark[v] = s.round
					frontier = append(frontier, v)
					if s.settledMark[v] != s.epoch {
						s.settledMark[v] = s.epoch
						settled = append(settled, v)
					}
				}
				if len(frontier) == 0 {
					continue
				}
				s.lightPhases++
				rounds++
				s.relaxPhase(frontier, true)
			}
			if err := checkCtx(s.opts.Ctx); err != nil {
				return err
			}
			if len(settled) > 0 {
				s.heavyPhases++
				s.relaxPhase(settled, false)
			}
		}

		s.opts.Logger.WithFields(logrus.Fields{
			"bucket":       i,
			"light_rounds": rounds,
			"settled":      len(settled),
		}).Debug("deltastep: bucket drained")
	}
}

// relaxPhase relaxes the light or heavy edges of vs in parallel and then
// re-buckets every improved target by its current distance. Targets never land
// below the bucket being drained: du+w >= du for w >= 0.
func (s *solver) relaxPhase(vs []int, light bool) {
	for w := range s.locals {
		s.locals[w] = s.locals[w][:0]
	}

	parallel.For(len(vs), s.opts.Parallel, func(worker, lo, hi int) {
		local := s.locals[worker]
		var relaxed, improved int64
		for _, u := range vs[lo:hi] {
			du := s.dist.load(u)
			ws := s.g.NeighborWeights(u)
			for k, v := range s.g.Neighbors(u) {
				w := ws[k]
				if (w <= s.delta) != light {
					continue
				}
				relaxed++
				if s.dist.relaxMin(v, du+w) {
					improved++
					local = append(local, v)
				}
			}
		}
		s.locals[worker] = local
		if light {
			s.lightRelax.Add(relaxed)
		} else {
			s.heavyRelax.Add(relaxed)
		}
		s.improved.Add(improved)
		s.opts.Monitor.Record(worker, relaxed)
	})

	for _, local := range s.locals {
		for _, v := range local {
			s.buckets.insert(s.bucketOf(s.dist.load(v)), v)
		}
	}
}

func (s *solver) stats() Stats {
	return Stats{
		Buckets:          s.nBuckets,
		LightPhases:      s.lightPhases,
		HeavyPhases:      s.heavyPhases,
		LightRelaxations: s.lightRelax.Load(),
		HeavyRelaxations: s.heavyRelax.Load(),
		Improvements:     s.improved.Load(),
	}
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
