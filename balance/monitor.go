package balance

import (
	"fmt"
	"sync/atomic"
)

// cacheLine is the assumed size of a CPU cache line.
const cacheLine = 64

type paddedCounter struct {
	n atomic.Int64
	_ [cacheLine - 8]byte
}

// Monitor accumulates per-worker work units.
type Monitor struct {
	slots []paddedCounter
}

// NewMonitor creates a monitor with the given number of worker slots.
// Panics if workers < 1.
func NewMonitor(workers int) *Monitor {
	if workers < 1 {
		panic(fmt.Sprintf("balance: NewMonitor(%d): need at least one worker", workers))
	}

	return &Monitor{slots: make([]paddedCounter, workers)}
}

// Workers returns the number of slots.
func (m *Monitor) Workers() int { return len(m.slots) }

// Record adds units to worker's counter. Ids beyond the slot count wrap.
// A nil monitor ignores the call.
func (m *Monitor) Record(worker int, units int64) {
	if m == nil || units == 0 {
		return
	}
	if worker < 0 {
		worker = -worker
	}
	m.slots[worker%len(m.slots)].n.Add(units)
}

// Work returns a snapshot of every counter.
func (m *Monitor) Work() []int64 {
	out := make([]int64, len(m.slots))
	for i := range m.slots {
		out[i] = m.slots[i].n.Load()
	}

	return out
}

// Total returns the sum of all counters.
func (m *Monitor) Total() int64 {
	var sum int64
	for i := range m.slots {
		sum += m.slots[i].n.Load()
	}

	return sum
}

// ImbalanceFactor returns max(work)/mean(work), or 1 when nothing was recorded.
func (m *Monitor) ImbalanceFactor() float64 {
	return m.Report().Imbalance
}

// Reset zeroes every counter.
func (m *Monitor) Reset() {
	for i := range m.slots {
		m.slots[i].n.Store(0)
	}
}

// Report is a consistent-enough snapshot of a Monitor.
type Report struct {
	PerWorker []int64
	Total     int64
	Max       int64
	Mean      float64
	Imbalance float64
}

// Report snapshots the counters and derives the summary figures.
func (m *Monitor) Report() Report {
	r := Report{PerWorker: m.Work(), Imbalance: 1}
	for _, w := range r.PerWorker {
		r.Total += w
		if w > r.Max {
			r.Max = w
		}
	}
	if r.Total == 0 {
		return r
	}
	r.Mean = float64(r.Total) / float64(len(r.PerWorker))
	r.Imbalance = float64(r.Max) / r.Mean

	return r
}

// String renders the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("workers=%d total=%d max=%d mean=%.1f imbalance=%.3f",
		len(r.PerWorker), r.Total, r.Max, r.Mean, r.Imbalance)
}
