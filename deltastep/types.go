package deltastep

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parlath/balance"
	"github.com/katalvlaran/parlath/parallel"
)

// Sentinel errors returned by DeltaStepping.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("deltastep: graph is nil")

	// ErrVertexNotFound indicates a source outside [0, n).
	ErrVertexNotFound = errors.New("deltastep: source vertex not found in graph")

	// ErrBadDelta indicates a bucket width that is not a positive finite number.
	ErrBadDelta = errors.New("deltastep: delta must be positive and finite")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("deltastep: invalid option supplied")
)

// Stats counts the work of one run.
type Stats struct {
	// Buckets is the number of non-empty buckets drained.
	Buckets int
	// LightPhases is the number of parallel light-edge rounds.
	LightPhases int
	// HeavyPhases is the number of parallel heavy-edge rounds.
	HeavyPhases int
	// LightRelaxations counts light edges examined.
	LightRelaxations int64
	// HeavyRelaxations counts heavy edges examined.
	HeavyRelaxations int64
	// Improvements counts successful distance decreases.
	Improvements int64
}

// Options configures a delta-stepping run.
type Options struct {
	// Ctx is checked between phases.
	Ctx context.Context

	// Parallel shapes the worker pool used for every relaxation phase.
	Parallel parallel.Config

	// Monitor, if set, receives edges relaxed per worker.
	Monitor *balance.Monitor

	// Stats, if set, is overwritten with the run's counters.
	Stats *Stats

	// Logger receives per-bucket debug entries.
	Logger logrus.FieldLogger

	err error
}

// Option represents a functional option for DeltaStepping.
type Option func(*Options)

// DefaultOptions returns a background context, the default worker pool and
// the standard logrus logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Parallel: parallel.DefaultConfig(),
		Logger:   logrus.StandardLogger(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
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

// WithSchedule selects static or dynamic partitioning of each phase.
func WithSchedule(s parallel.Schedule) Option {
	return func(o *Options) {
		o.Parallel.Schedule = s
	}
}

// WithMonitor records per-worker relaxations into m.
func WithMonitor(m *balance.Monitor) Option {
	return func(o *Options) {
		o.Monitor = m
	}
}

// WithStats asks the run to fill st.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
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
