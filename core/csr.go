// File: csr.go
// Role: immutable compressed sparse row graph and its read-only queries.
// Concurrency:
//   - No locks; values never change after construction.

package core

import "fmt"

// CSRGraph is an immutable directed graph in compressed sparse row form.
// Neighbors of v are edges[offsets[v]:offsets[v+1]].
type CSRGraph struct {
	offsets []int
	edges   []int
}

// NewCSR adopts raw offsets/edges arrays after checking every layout
// invariant. The slices are not copied; the caller must not modify them.
func NewCSR(offsets, edges []int) (*CSRGraph, error) {
	g := &CSRGraph{offsets: offsets, edges: edges}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate checks the CSR invariants: offsets has n+1 entries starting at 0,
// is non-decreasing, ends at len(edges), and every edge target is in [0, n).
func (g *CSRGraph) Validate() error {
	if len(g.offsets) == 0 {
		return fmt.Errorf("%w: offsets is empty", ErrMalformedCSR)
	}
	if g.offsets[0] != 0 {
		return fmt.Errorf("%w: offsets[0]=%d", ErrMalformedCSR, g.offsets[0])
	}
	n := len(g.offsets) - 1
	for v := 0; v < n; v++ {
		if g.offsets[v+1] < g.offsets[v] {
			return fmt.Errorf("%w: offsets decrease at %d", ErrMalformedCSR, v)
		}
	}
	if g.offsets[n] != len(g.edges) {
		return fmt.Errorf("%w: offsets[n]=%d, len(edges)=%d", ErrMalformedCSR, g.offsets[n], len(g.edges))
	}
	for i, t := range g.edges {
		if t < 0 || t >= n {
			return fmt.Errorf("%w: edges[%d]=%d out of range", ErrMalformedCSR, i, t)
		}
	}

	return nil
}

// NumVertices returns n.
func (g *CSRGraph) NumVertices() int { return len(g.offsets) - 1 }

// NumEdges returns m.
func (g *CSRGraph) NumEdges() int { return len(g.edges) }

// HasVertex reports whether v is in [0, n).
func (g *CSRGraph) HasVertex(v int) bool { return v >= 0 && v < len(g.offsets)-1 }

// Neighbors returns the out-neighbors of v as a sub-slice of the edge array.
// The result must be treated as read-only.
func (g *CSRGraph) Neighbors(v int) []int {
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// EdgeRange returns the half-open index range of v's edges.
func (g *CSRGraph) EdgeRange(v int) (start, end int) {
	return g.offsets[v], g.offsets[v+1]
}

// OutDegree returns the number of edges leaving v.
func (g *CSRGraph) OutDegree(v int) int { return g.offsets[v+1] - g.offsets[v] }

// Offsets exposes the offsets array (read-only).
func (g *CSRGraph) Offsets() []int { return g.offsets }

// Edges exposes the edge array (read-only).
func (g *CSRGraph) Edges() []int { return g.edges }

// MaxOutDegree returns the largest out-degree, 0 for an empty graph.
func (g *CSRGraph) MaxOutDegree() int {
	best := 0
	for v := 0; v < g.NumVertices(); v++ {
		if d := g.OutDegree(v); d > best {
			best = d
		}
	}

	return best
}

// InDegrees counts incoming edges per vertex.
func (g *CSRGraph) InDegrees() []int {
	in := make([]int, g.NumVertices())
	for _, t := range g.edges {
		in[t]++
	}

	return in
}

// Transpose returns the reverse graph: for every edge u→v it holds v→u.
// In-neighbors of each vertex appear in ascending source order.
//
// Complexity: O(V+E) by counting sort.
func (g *CSRGraph) Transpose() *CSRGraph {
	offsets, edges, _ := transpose(g.offsets, g.edges, nil)

	return &CSRGraph{offsets: offsets, edges: edges}
}

// transpose reverses a CSR layout, carrying weights along when given.
func transpose(offsets, edges []int, weights []float32) ([]int, []int, []float32) {
	n := len(offsets) - 1
	rOffsets := make([]int, n+1)
	for _, t := range edges {
		rOffsets[t+1]++
	}
	for v := 0; v < n; v++ {
		rOffsets[v+1] += rOffsets[v]
	}

	cursor := make([]int, n)
	copy(cursor, rOffsets[:n])
	rEdges := make([]int, len(edges))
	var rWeights []float32
	if weights != nil {
		rWeights = make([]float32, len(weights))
	}
	for u := 0; u < n; u++ {
		for i := offsets[u]; i < offsets[u+1]; i++ {
			t := edges[i]
			rEdges[cursor[t]] = u
			if weights != nil {
				rWeights[cursor[t]] = weights[i]
			}
			cursor[t]++
		}
	}

	return rOffsets, rEdges, rWeights
}
