// Package bfs provides breadth-first search over a core.CSRGraph: a parallel
// level-synchronous engine and a sequential FIFO reference.
//
// What
//
//   - Parallel(g, source, opts...) expands the graph one level at a time.
//     Within a level the frontier is partitioned across a bounded worker pool;
//     workers race to claim neighbors through an atomic VisitedSet and
//     append the vertices they won to worker-local buffers. At the barrier
//     the buffers become the next frontier and the level's distances are
//     written in a second parallel pass.
//   - Sequential(g, source, opts...) is the classic queue-based BFS.
//   - Both return a BFSResult with hop distances (Unreachable = -1), a BFS
//     tree in Parent and the number of levels expanded.
//
// Determinism
//
//	Distances are deterministic. Parents in a parallel run depend on which
//	worker claimed a vertex first; every recorded parent sits exactly one
//	level closer to the source.
//
// Direction optimization
//
//	WithDirectionOptimizing switches a level to bottom-up when the frontier's
//	out-edges exceed unexplored/DefaultAlpha: every unvisited vertex scans its
//	in-neighbors (the transpose) and stops at the first frontier member. It
//	switches back once the frontier falls under n/DefaultBeta. Results are
//	identical; only the work differs.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) work, one barrier per level
//   - Memory: O(V) for distances, parents, flags and frontiers
//
// Usage
//
//	res, err := bfs.Parallel(csr, 0,
//	    bfs.WithWorkers(8),
//	    bfs.WithMonitor(mon),
//	    bfs.WithContext(ctx),
//	)
//
// Options
//
//   - WithContext(ctx):               cancellation, checked at level boundaries.
//   - WithMaxDepth(d):                do not expand beyond depth d (>0).
//   - WithOnLevel(fn):                hook before each level with its size.
//   - WithWorkers/WithGrain/WithSchedule: worker pool shape.
//   - WithMonitor(m):                 per-worker edge scans for load-balance reports.
//   - WithLogger(l):                  logrus logger for per-level debug entries.
//   - WithDirectionOptimizing(rev):   hybrid top-down/bottom-up traversal.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the source is outside [0, n).
//   - ErrOptionViolation      for invalid options (negative depth or workers).
//   - ctx.Err()               when the context is done at a level boundary.
package bfs
