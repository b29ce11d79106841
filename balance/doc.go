// Package balance measures how evenly parallel work was spread over workers.
//
// A Monitor holds one counter per worker slot. Algorithms call Record with the
// units of work a worker performed (edges scanned, vertices relaxed) and the
// monitor reports
//
//	imbalance = max(work) / mean(work)
//
// 1.0 is perfect balance; a value near the worker count means one worker did
// nearly everything. Counters are atomic and padded to separate cache lines,
// so recording from hot loops does not serialize workers.
//
// NewCollector exposes a Monitor as Prometheus gauges.
package balance
