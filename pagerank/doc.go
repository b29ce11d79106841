// Package pagerank computes PageRank scores over a core.CSRGraph by power
// iteration, spreading each iteration across a bounded worker pool.
//
// Two ways to move rank along edges are provided:
//
//   - Gather (default) walks the transpose: every vertex sums the shares of
//     its in-neighbors and writes only its own slot. No atomics are needed.
//     The transpose is built once per call, or supplied with WithTranspose.
//   - Scatter walks the forward graph and pushes rank[u]/outdeg(u) into every
//     out-neighbor with an atomic float64 add (a CAS loop on the bit pattern).
//
// Each iteration reads the previous vector and writes a fresh one, so results
// do not depend on scheduling beyond floating-point summation order.
//
// Vertices without out-edges hold "dangling" rank. By default it is spread
// uniformly over all vertices, so the scores always sum to 1. Disable with
// WithDanglingRedistribution(false) for the textbook formula, where that mass
// is lost.
//
// Complexity: O(V + E) per iteration for both strategies, plus O(V + E) once
// for the transpose under Gather.
package pagerank
