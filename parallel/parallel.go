package parallel

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Schedule selects how For distributes iterations over workers.
type Schedule int

const (
	// Dynamic hands out Grain-sized chunks on demand.
	Dynamic Schedule = iota
	// Static gives each worker one contiguous range.
	Static
)

// String implements fmt.Stringer.
func (s Schedule) String() string {
	switch s {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

// ParseSchedule maps "dynamic" or "static" to a Schedule.
func ParseSchedule(s string) (Schedule, error) {
	switch s {
	case "dynamic", "":
		return Dynamic, nil
	case "static":
		return Static, nil
	default:
		return Dynamic, fmt.Errorf("parallel: unknown schedule %q", s)
	}
}

// DefaultGrain is the chunk size used by the dynamic schedule when none is set.
const DefaultGrain = 256

// Config controls the degree of parallelism of For.
type Config struct {
	// Workers is the upper bound on concurrent goroutines.
	// Default: runtime.GOMAXPROCS(0)
	Workers int

	// Grain is the number of iterations a dynamic worker claims at once.
	// Default: DefaultGrain
	Grain int

	// Schedule picks static or dynamic partitioning.
	// Default: Dynamic
	Schedule Schedule
}

// DefaultConfig returns a config sized to the current GOMAXPROCS.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		Grain:    DefaultGrain,
		Schedule: Dynamic,
	}
}

// Normalize replaces non-positive fields with their defaults.
func (c Config) Normalize() Config {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Grain <= 0 {
		c.Grain = DefaultGrain
	}

	return c
}

// WorkersFor returns how many goroutines For starts for n iterations.
func (c Config) WorkersFor(n int) int {
	c = c.Normalize()
	if n <= 0 {
		return 0
	}
	w := c.Workers
	if c.Schedule == Dynamic {
		if chunks := (n + c.Grain - 1) / c.Grain; chunks < w {
			w = chunks
		}
	} else if n < w {
		w = n
	}

	return w
}

// For runs body over [0,n) split into half-open ranges and waits for all of
// them. body may be called several times per worker; calls with the same
// worker id never overlap.
func For(n int, cfg Config, body func(worker, lo, hi int)) {
	cfg = cfg.Normalize()
	workers := cfg.WorkersFor(n)
	switch {
	case workers == 0:
		return
	case workers == 1:
		body(0, 0, n)
		return
	}

	var g errgroup.Group
	if cfg.Schedule == Static {
		for w := 0; w < workers; w++ {
			lo, hi := w*n/workers, (w+1)*n/workers
			g.Go(func() error {
				body(w, lo, hi)
				return nil
			})
		}
		_ = g.Wait()
		return
	}

	var cursor atomic.Int64
	grain := int64(cfg.Grain)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				lo := cursor.Add(grain) - grain
				if lo >= int64(n) {
					return nil
				}
				hi := lo + grain
				if hi > int64(n) {
					hi = int64(n)
				}
				body(w, int(lo), int(hi))
			}
		})
	}
	_ = g.Wait()
}

// ForEach is For with one call per index.
func ForEach(n int, cfg Config, fn func(worker, i int)) {
	For(n, cfg, func(worker, lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(worker, i)
		}
	})
}
