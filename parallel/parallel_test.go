package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlath/parallel"
)

// TestFor_CoversEveryIndexOnce checks both schedules touch [0,n) exactly once.
func TestFor_CoversEveryIndexOnce(t *testing.T) {
	for _, sched := range []parallel.Schedule{parallel.Static, parallel.Dynamic} {
		for _, n := range []int{0, 1, 7, 1000, 4097} {
			cfg := parallel.Config{Workers: 4, Grain: 64, Schedule: sched}
			hits := make([]atomic.Int32, n)
			parallel.For(n, cfg, func(_, lo, hi int) {
				for i := lo; i < hi; i++ {
					hits[i].Add(1)
				}
			})
			for i := range hits {
				require.Equal(t, int32(1), hits[i].Load(), "%s n=%d i=%d", sched, n, i)
			}
		}
	}
}

// TestFor_WorkerIDsDense checks worker ids stay below WorkersFor(n).
func TestFor_WorkerIDsDense(t *testing.T) {
	cfg := parallel.Config{Workers: 3, Grain: 10, Schedule: parallel.Dynamic}
	n := 1000
	limit := cfg.WorkersFor(n)
	require.Equal(t, 3, limit)

	var bad atomic.Int32
	perWorker := make([]int, limit)
	parallel.For(n, cfg, func(w, lo, hi int) {
		if w < 0 || w >= limit {
			bad.Add(1)
			return
		}
		perWorker[w] += hi - lo // same id never runs concurrently
	})
	assert.Zero(t, bad.Load())
	total := 0
	for _, c := range perWorker {
		total += c
	}
	assert.Equal(t, n, total)
}

func TestWorkersFor(t *testing.T) {
	assert.Equal(t, 0, parallel.Config{Workers: 8}.WorkersFor(0))
	assert.Equal(t, 1, parallel.Config{Workers: 8, Grain: 100}.WorkersFor(50))
	assert.Equal(t, 2, parallel.Config{Workers: 8, Grain: 100}.WorkersFor(150))
	assert.Equal(t, 5, parallel.Config{Workers: 8, Schedule: parallel.Static}.WorkersFor(5))
	assert.Equal(t, 8, parallel.Config{Workers: 8, Schedule: parallel.Static}.WorkersFor(500))
}

func TestNormalizeAndParse(t *testing.T) {
	c := parallel.Config{}.Normalize()
	assert.Positive(t, c.Workers)
	assert.Equal(t, parallel.DefaultGrain, c.Grain)

	s, err := parallel.ParseSchedule("static")
	require.NoError(t, err)
	assert.Equal(t, parallel.Static, s)
	assert.Equal(t, "static", s.String())

	_, err = parallel.ParseSchedule("guided")
	assert.Error(t, err)
}

func TestForEach_Sum(t *testing.T) {
	var sum atomic.Int64
	parallel.ForEach(100, parallel.DefaultConfig(), func(_, i int) {
		sum.Add(int64(i))
	})
	assert.Equal(t, int64(4950), sum.Load())
}
