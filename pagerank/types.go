package pagerank

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parlath/balance"
	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/parallel"
)

// Sentinel errors for PageRank.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pagerank: graph is nil")

	// ErrBadDamping indicates a damping factor outside [0, 1].
	ErrBadDamping = errors.New("pagerank: damping must be in [0, 1]")

	// ErrBadEpsilon indicates a non-positive convergence threshold.
	ErrBadEpsilon = errors.New("pagerank: epsilon must be positive")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("pagerank: iterations must be non-negative")

	// ErrTransposeMismatch indicates a supplied transpose of another graph.
	ErrTransposeMismatch = errors.New("pagerank: transpose does not match graph")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("pagerank: invalid option supplied")
)

// DefaultMaxIterations bounds UntilConvergence.
const DefaultMaxIterations = 1000

// Strategy selects how contributions reach their targets.
type Strategy int

const (
	// Gather computes each vertex from its in-neighbors over the transpose.
	// No atomics; every vertex is written by exactly one worker.
	Gather Strategy = iota
	// Scatter pushes each vertex's share along its out-edges with atomic adds.
	// Needs no transpose but contends on popular targets.
	Scatter
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Gather:
		return "gather"
	case Scatter:
		return "scatter"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "gather" or "scatter" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "gather", "":
		return Gather, nil
	case "scatter":
		return Scatter, nil
	default:
		return Gather, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Iteration describes one completed power iteration.
type Iteration struct {
	// Iter is 1-based.
	Iter int
	// MaxDelta is max_v |new[v]-old[v]|, the convergence criterion.
	MaxDelta float64
	// L1Delta is Σ_v |new[v]-old[v]|; it contracts by the damping factor.
	L1Delta float64
	// DanglingMass is the rank held by vertices without out-edges.
	DanglingMass float64
}

// Options configures a PageRank run.
type Options struct {
	Ctx           context.Context
	Strategy      Strategy
	Transpose     *core.CSRGraph
	MaxIterations int
	// Dangling redistributes the rank of sink vertices uniformly, which keeps
	// the ranks summing to 1.
	Dangling    bool
	OnIteration func(Iteration)
	Parallel    parallel.Config
	Monitor     *balance.Monitor
	Logger      logrus.FieldLogger

	err error
}

// Option represents a functional option for PageRank.
type Option func(*Options)

// DefaultOptions returns the gather strategy with dangling redistribution,
// DefaultMaxIterations, the default worker pool and the standard logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Strategy:      Gather,
		MaxIterations: DefaultMaxIterations,
		Dangling:      true,
		OnIteration:   func(Iteration) {},
		Parallel:      parallel.DefaultConfig(),
		Logger:        logrus.StandardLogger(),
	}
}

// WithContext sets a custom context, checked between iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects Gather or Scatter.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Gather && s != Scatter {
			o.err = fmt.Errorf("%w: strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithTranspose reuses a precomputed reverse graph for Gather.
func WithTranspose(rev *core.CSRGraph) Option {
	return func(o *Options) {
		o.Transpose = rev
	}
}

// WithMaxIterations bounds UntilConvergence. n must be >= 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithDanglingRedistribution toggles uniform redistribution of sink rank.
// Disabled, rank held by sinks leaks and the total drops below 1.
func WithDanglingRedistribution(on bool) Option {
	return func(o *Options) {
		o.Dangling = on
	}
}

// WithOnIteration registers a callback run after every iteration.
func WithOnIteration(fn func(Iteration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithWorkers bounds the number of goroutines; 0 keeps GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallel.Workers = n
	}
}

// WithGrain sets the dynamic-schedule chunk size; 0 keeps the default.
func WithGrain(g int) Option {
	return func(o *Options) {
		if g < 0 {
			o.err = fmt.Errorf("%w: grain cannot be negative (%d)", ErrOptionViolation, g)
			return
		}
		o.Parallel.Grain = g
	}
}

// WithSchedule selects static or dynamic partitioning.
func WithSchedule(s parallel.Schedule) Option {
	return func(o *Options) {
		o.Parallel.Schedule = s
	}
}

// WithMonitor records edges processed per worker.
func WithMonitor(m *balance.Monitor) Option {
	return func(o *Options) {
		o.Monitor = m
	}
}

// WithLogger replaces the standard logrus logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
