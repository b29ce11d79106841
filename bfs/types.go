// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.CSRGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parlath/balance"
	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/parallel"
)

// Unreachable marks a vertex the search never discovered.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the source is outside [0, n).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an undiscovered vertex.
	ErrNoPath = errors.New("bfs: no path")
)

// Direction-optimizing thresholds (Beamer et al.): switch to bottom-up when the
// frontier's out-edges exceed unexplored/Alpha, back to top-down when the
// frontier shrinks below n/Beta.
const (
	DefaultAlpha = 14
	DefaultBeta  = 24
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines; checked once per level.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// OnLevel is called before a level is expanded with its depth and size.
	OnLevel func(depth, size int)

	// Parallel configures the worker pool of Parallel.
	Parallel parallel.Config

	// Monitor, if set, receives the number of edges each worker scanned.
	Monitor *balance.Monitor

	// Logger receives per-level debug entries.
	Logger logrus.FieldLogger

	// DirectionOptimizing enables bottom-up steps over the transpose.
	DirectionOptimizing bool

	// Transpose reuses a precomputed reverse graph for bottom-up steps.
	Transpose *core.CSRGraph

	err error
}

// DefaultOptions returns BFSOptions with a background context, no depth limit,
// a no-op level hook, the default worker pool and the standard logger.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnLevel:  func(int, int) {},
		Parallel: parallel.DefaultConfig(),
		Logger:   logrus.StandardLogger(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnLevel registers a callback invoked once per level.
func WithOnLevel(fn func(depth, size int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithWorkers bounds the number of goroutines; 0 keeps GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallel.Workers = n
	}
}

// WithGrain sets the dynamic-schedule chunk size; 0 keeps the default.
func WithGrain(g int) Option {
	return func(o *BFSOptions) {
		if g < 0 {
			o.err = fmt.Errorf("%w: grain cannot be negative (%d)", ErrOptionViolation, g)
			return
		}
		o.Parallel.Grain = g
	}
}

// WithSchedule selects static or dynamic partitioning of each level.
func WithSchedule(s parallel.Schedule) Option {
	return func(o *BFSOptions) {
		o.Parallel.Schedule = s
	}
}

// WithMonitor records per-worker edge scans into m.
func WithMonitor(m *balance.Monitor) Option {
	return func(o *BFSOptions) {
		o.Monitor = m
	}
}

// WithLogger replaces the standard logrus logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDirectionOptimizing lets Parallel switch to bottom-up steps on large
// frontiers. rev may be nil, in which case the transpose is built on demand.
func WithDirectionOptimizing(rev *core.CSRGraph) Option {
	return func(o *BFSOptions) {
		o.DirectionOptimizing = true
		o.Transpose = rev
	}
}

// BFSResult holds the outcome of a traversal:
//   - Dist: hop count from the source, Unreachable if never discovered.
//   - Parent: predecessor in a BFS tree, -1 for the source and unreached vertices.
//   - Levels: number of non-empty levels expanded.
//
// In a parallel run the parent of a vertex is whichever frontier vertex
// claimed it first; any such parent is one level closer to the source.
type BFSResult struct {
	Source int
	Dist   []int
	Parent []int
	Levels int
}

func newResult(source, n int) *BFSResult {
	r := &BFSResult{Source: source, Dist: make([]int, n), Parent: make([]int, n)}
	for i := range r.Dist {
		r.Dist[i] = Unreachable
		r.Parent[i] = -1
	}
	r.Dist[source] = 0

	return r
}

// Reached counts discovered vertices, the source included.
func (r *BFSResult) Reached() int {
	c := 0
	for _, d := range r.Dist {
		if d != Unreachable {
			c++
		}
	}

	return c
}

// PathTo reconstructs the path from the source to dest.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) || r.Dist[dest] == Unreachable {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Dist[dest]+1)
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// prepare applies options and validates the graph and source.
func prepare(g *core.CSRGraph, source int, opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	if g == nil {
		return o, ErrGraphNil
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if !g.HasVertex(source) {
		return o, fmt.Errorf("%w: %d (n=%d)", ErrStartVertexNotFound, source, g.NumVertices())
	}
	o.Parallel = o.Parallel.Normalize()

	return o, nil
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
