package components

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parlath/balance"
	"github.com/katalvlaran/parlath/parallel"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrTooManyVertices is returned when vertex ids do not fit in 32 bits.
	ErrTooManyVertices = errors.New("components: too many vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("components: invalid option supplied")
)

// Options configures ConnectedComponents.
type Options struct {
	Ctx      context.Context
	Parallel parallel.Config
	Monitor  *balance.Monitor
	Logger   logrus.FieldLogger

	err error
}

// Option represents a functional option for ConnectedComponents.
type Option func(*Options)

// DefaultOptions returns the default worker pool and the standard logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Parallel: parallel.DefaultConfig(),
		Logger:   logrus.StandardLogger(),
	}
}

// WithContext sets a context checked before each phase.
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
