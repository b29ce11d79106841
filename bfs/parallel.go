package bfs

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/parallel"
)

// frontierWalker holds the mutable state of one level-synchronous run.
type frontierWalker struct {
	g       *core.CSRGraph
	rev     *core.CSRGraph
	opts    BFSOptions
	res     *BFSResult
	visited *VisitedSet

	// locals[w] collects the vertices worker w claimed in the current level.
	locals     [][]int
	inFrontier []bool
}

// Parallel runs a level-synchronous breadth-first search from source.
//
// Each level is one parallel phase: the frontier is split across workers,
// every worker claims undiscovered neighbors through the shared VisitedSet
// and keeps its winners in a private buffer. After the barrier the buffers
// are concatenated into the next frontier and a second parallel pass writes
// the level's distances. A vertex is therefore claimed exactly once and its
// distance is the level at which it was first reached.
//
// Complexity: O(V+E) work; one barrier per level.
func Parallel(g *core.CSRGraph, source int, opts ...Option) (*BFSResult, error) {
	o, err := prepare(g, source, opts)
	if err != nil {
		return nil, err
	}

	n := g.NumVertices()
	w := &frontierWalker{
		g:       g,
		opts:    o,
		res:     newResult(source, n),
		visited: NewVisitedSet(n),
		locals:  make([][]int, o.Parallel.Workers),
	}
	w.visited.TryClaim(source)
	if o.DirectionOptimizing {
		w.rev = o.Transpose
		if w.rev == nil || w.rev.NumVertices() != n || w.rev.NumEdges() != g.NumEdges() {
			w.rev = g.Transpose()
		}
		w.inFrontier = make([]bool, n)
	}

	return w.res, w.run()
}

func (w *frontierWalker) run() error {
	frontier := []int{w.res.Source}
	unexplored := w.g.NumEdges()
	n := w.g.NumVertices()
	bottomUp := false

	for depth := 0; len(frontier) > 0; depth++ {
		if err := checkCtx(w.opts.Ctx); err != nil {
			return err
		}
		w.opts.OnLevel(depth, len(frontier))
		w.res.Levels = depth + 1
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			return nil
		}

		if w.rev != nil {
			frontierEdges := 0
			for _, u := range frontier {
				frontierEdges += w.g.OutDegree(u)
			}
			switch {
			case !bottomUp && frontierEdges > unexplored/DefaultAlpha:
				bottomUp = true
			case bottomUp && len(frontier) < n/DefaultBeta:
				bottomUp = false
			}
			unexplored -= frontierEdges
		}

		for i := range w.locals {
			w.locals[i] = w.locals[i][:0]
		}
		if bottomUp {
			w.stepBottomUp(frontier)
		} else {
			w.stepTopDown(frontier)
		}

		next := w.merge()
		nextDepth := depth + 1
		dist := w.res.Dist
		parallel.For(len(next), w.opts.Parallel, func(_, lo, hi int) {
			for _, v := range next[lo:hi] {
				dist[v] = nextDepth
			}
		})

		w.opts.Logger.WithFields(logrus.Fields{
			"depth":     depth,
			"frontier":  len(frontier),
			"next":      len(next),
			"bottom_up": bottomUp,
		}).Debug("bfs: level expanded")
		frontier = next
	}

	return nil
}

// stepTopDown expands every frontier vertex along its out-edges.
func (w *frontierWalker) stepTopDown(frontier []int) {
	parent := w.res.Parent
	parallel.For(len(frontier), w.opts.Parallel, func(worker, lo, hi int) {
		local := w.locals[worker]
		scanned := 0
		for _, u := range frontier[lo:hi] {
			nbrs := w.g.Neighbors(u)
			scanned += len(nbrs)
			for _, v := range nbrs {
				if w.visited.TryClaim(v) {
					parent[v] = u
					local = append(local, v)
				}
			}
		}
		w.locals[worker] = local
		w.opts.Monitor.Record(worker, int64(scanned))
	})
}

// stepBottomUp lets every unvisited vertex look for a parent among its
// in-neighbors, stopping at the first frontier member.
func (w *frontierWalker) stepBottomUp(frontier []int) {
	for _, u := range frontier {
		w.inFrontier[u] = true
	}
	parent := w.res.Parent
	parallel.For(w.g.NumVertices(), w.opts.Parallel, func(worker, lo, hi int) {
		local := w.locals[worker]
		scanned := 0
		for v := lo; v < hi; v++ {
			if w.visited.Contains(v) {
				continue
			}
			for _, u := range w.rev.Neighbors(v) {
				scanned++
				if !w.inFrontier[u] {
					continue
				}
				if w.visited.TryClaim(v) {
					parent[v] = u
					local = append(local, v)
				}
				break
			}
		}
		w.locals[worker] = local
		w.opts.Monitor.Record(worker, int64(scanned))
	})
	for _, u := range frontier {
		w.inFrontier[u] = false
	}
}

// merge concatenates the per-worker buffers into a fresh frontier.
func (w *frontierWalker) merge() []int {
	total := 0
	for _, l := range w.locals {
		total += len(l)
	}
	next := make([]int, 0, total)
	for _, l := range w.locals {
		next = append(next, l...)
	}

	return next
}
