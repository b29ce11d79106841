// Package core defines the graph representations shared by every algorithm in
// parlath: a mutable AdjacencyGraph used while loading edges, and the immutable
// compressed sparse row views (CSRGraph, WeightedCSRGraph) the parallel kernels
// run on.
//
// Vertices are dense integers in [0, n). The vertex count is fixed when the
// AdjacencyGraph is created; edges are appended one at a time, possibly from
// several goroutines at once.
//
// Lifecycle:
//
//	g := core.NewAdjacencyGraph(n)      // Building
//	_ = g.AddEdge(0, 1)                 // O(1) amortized
//	csr := g.ToCSR()                    // Finalized: AddEdge now returns ErrFinalized
//
// CSR layout:
//
//	offsets: len n+1, offsets[0]=0, offsets[n]=m, non-decreasing
//	edges:   len m, neighbors of v are edges[offsets[v]:offsets[v+1]]
//	weights: (weighted only) len m, parallel to edges, finite and >= 0
//
// Conversion is O(V+E): a prefix sum over the out-degrees produces offsets,
// then every neighbor list is copied into its slot. Edge multiplicity and the
// per-vertex insertion order are preserved. A CSR value never changes after it
// is built, so any number of goroutines may read it without locking.
//
// Transpose builds the reverse adjacency (in-edges) by counting sort, again in
// O(V+E). PageRank gathers over it and direction-optimizing BFS scans it in
// bottom-up steps.
//
// Errors:
//
//	ErrInvalidVertex  - an endpoint is outside [0, n).
//	ErrNegativeWeight - a weight below zero.
//	ErrInvalidWeight  - a NaN or infinite weight.
//	ErrFinalized      - AddEdge after the graph was converted to CSR.
//	ErrMalformedCSR   - raw arrays passed to NewCSR violate the layout.
package core
