// Package deltastep implements the delta-stepping single-source shortest path
// algorithm (Meyer & Sanders) over core.WeightedCSRGraph.
//
// What
//
//   - DeltaStepping(g, source, delta, opts...) returns one float32 distance
//     per vertex, +Inf for unreachable vertices.
//   - Tentative distances live in an array of atomic float32 cells; a
//     relaxation is a compare-and-swap min loop, so racing workers cannot
//     lose an improvement.
//   - Bucket i holds vertices with tentative distance in [iΔ, (i+1)Δ). The
//     smallest non-empty bucket is drained in light rounds, then its heavy
//     edges are relaxed once.
//
// Choosing Δ
//
//	Δ → 0 degenerates to Dijkstra (many tiny buckets, little parallelism);
//	Δ → ∞ degenerates to Bellman-Ford (one bucket, many light rounds). Both
//	extremes are correct. SuggestDelta(g) returns maxWeight/averageDegree.
//	Buckets are stored sparsely, so a tiny Δ costs time, not memory.
//
// Complexity
//
//	O(V + E + rounds·frontier) work; one barrier per light round and per
//	heavy phase. Bucket bookkeeping is sequential between phases.
//
// Options
//
//   - WithContext(ctx): checked before every phase.
//   - WithWorkers/WithGrain/WithSchedule: worker pool shape.
//   - WithMonitor(m):   edges relaxed per worker.
//   - WithStats(&st):   phase and relaxation counters.
//   - WithLogger(l):    per-bucket debug entries.
//
// Errors
//
//   - ErrNilGraph, ErrVertexNotFound, ErrBadDelta (Δ ≤ 0, NaN or +Inf),
//     ErrOptionViolation, ctx.Err().
package deltastep
