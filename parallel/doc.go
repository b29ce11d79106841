// Package parallel is the scheduling layer of parlath: a bounded data-parallel
// loop with an implicit barrier.
//
// Every algorithm phase (one BFS level, one delta-stepping light round, one
// PageRank iteration, the union pass of connected components) is a single
// call to For. For returns only after every chunk has run, and all writes made
// by the chunks happen-before the return, so the caller may read per-worker
// buffers without further synchronization.
//
// Schedules:
//
//	Static  - [0,n) split into Workers contiguous ranges of near-equal size.
//	Dynamic - workers repeatedly claim Grain-sized chunks from a shared atomic
//	          cursor; a slow chunk (a hub vertex) does not hold back the rest.
//
// Worker ids passed to the body are dense in [0, Config.Workers), which lets
// callers keep one scratch buffer per worker and merge them after the barrier.
//
// There is no cancellation inside a loop. Callers check their context between
// phases.
package parallel
