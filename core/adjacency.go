// File: adjacency.go
// Role: AdjacencyGraph, the mutable edge store used while a graph is loaded.
// Concurrency:
//   - All mutations and reads take g.mu; AddEdge is safe from many goroutines.
//   - Conversion (ToCSR/ToWeightedCSR) finalizes the graph under the same lock.

package core

import (
	"fmt"
	"sync"
)

// AdjacencyGraph holds per-vertex neighbor lists for a fixed vertex count.
// Weights are tracked lazily: the first weighted edge allocates weight lists
// and backfills DefaultWeight for edges added before it.
type AdjacencyGraph struct {
	mu sync.Mutex

	n          int
	adj        [][]int
	weights    [][]float32 // nil until a weighted edge arrives
	numEdges   int
	finalized  bool
	undirected bool
	degreeHint int
}

// NewAdjacencyGraph creates an empty graph on vertices [0, n).
// A negative n is treated as zero.
func NewAdjacencyGraph(n int, opts ...GraphOption) *AdjacencyGraph {
	if n < 0 {
		n = 0
	}
	g := &AdjacencyGraph{n: n}
	for _, opt := range opts {
		opt(g)
	}
	g.adj = make([][]int, n)
	if g.degreeHint > 0 {
		for v := range g.adj {
			g.adj[v] = make([]int, 0, g.degreeHint)
		}
	}

	return g
}

// FromEdgeList builds a graph on n vertices from unweighted pairs.
// It stops at the first invalid pair and reports its index.
func FromEdgeList(n int, edges [][2]int, opts ...GraphOption) (*AdjacencyGraph, error) {
	g := NewAdjacencyGraph(n, opts...)
	for i, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("core: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// FromWeightedEdgeList builds a weighted graph on n vertices.
func FromWeightedEdgeList(n int, edges []WeightedEdge, opts ...GraphOption) (*AdjacencyGraph, error) {
	g := NewAdjacencyGraph(n, opts...)
	for i, e := range edges {
		if err := g.AddWeightedEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("core: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// AddEdge appends the directed edge u→v (and v→u for undirected graphs).
// Parallel edges and self-loops are kept as given.
//
// Complexity: O(1) amortized.
func (g *AdjacencyGraph) AddEdge(u, v int) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finalized {
		return ErrFinalized
	}
	g.appendLocked(u, v, DefaultWeight)

	return nil
}

// AddWeightedEdge appends u→v with weight w. Weights must be finite and >= 0;
// the check happens here so the algorithms never see a bad weight.
func (g *AdjacencyGraph) AddWeightedEdge(u, v int, w float32) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}
	if err := checkWeight(w); err != nil {
		return fmt.Errorf("core: edge %d→%d: %w", u, v, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finalized {
		return ErrFinalized
	}
	if g.weights == nil {
		g.weights = make([][]float32, g.n)
		for x, nbrs := range g.adj {
			if len(nbrs) == 0 {
				continue
			}
			ws := make([]float32, len(nbrs), cap(nbrs))
			for i := range ws {
				ws[i] = DefaultWeight
			}
			g.weights[x] = ws
		}
	}
	g.appendLocked(u, v, w)

	return nil
}

func (g *AdjacencyGraph) checkEndpoints(u, v int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrInvalidVertex, u, g.n)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrInvalidVertex, v, g.n)
	}

	return nil
}

// appendLocked stores u→v and its mirror. Caller holds g.mu.
func (g *AdjacencyGraph) appendLocked(u, v int, w float32) {
	g.adj[u] = append(g.adj[u], v)
	if g.weights != nil {
		g.weights[u] = append(g.weights[u], w)
	}
	g.numEdges++
	if g.undirected && u != v {
		g.adj[v] = append(g.adj[v], u)
		if g.weights != nil {
			g.weights[v] = append(g.weights[v], w)
		}
		g.numEdges++
	}
}

// NumVertices returns n.
func (g *AdjacencyGraph) NumVertices() int { return g.n }

// NumEdges returns the number of stored directed edges.
func (g *AdjacencyGraph) NumEdges() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.numEdges
}

// Weighted reports whether any edge was added with an explicit weight.
func (g *AdjacencyGraph) Weighted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.weights != nil
}

// Undirected reports whether edges are mirrored on insertion.
func (g *AdjacencyGraph) Undirected() bool { return g.undirected }

// Finalized reports whether the graph was converted to CSR.
func (g *AdjacencyGraph) Finalized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.finalized
}

// Neighbors returns a copy of u's neighbor list in insertion order.
func (g *AdjacencyGraph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrInvalidVertex, u, g.n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// OutDegree returns the number of edges leaving u, or 0 for an invalid u.
func (g *AdjacencyGraph) OutDegree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.adj[u])
}

// ToCSR converts the graph into compressed sparse row form and finalizes it.
// The adjacency lists stay readable, so ToWeightedCSR may still be called.
//
// Complexity: O(V+E) time, O(V+E) extra memory.
func (g *AdjacencyGraph) ToCSR() *CSRGraph {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.finalized = true

	offsets, edges := g.packLocked()

	return &CSRGraph{offsets: offsets, edges: edges}
}

// ToWeightedCSR converts the graph into weighted CSR form and finalizes it.
// Edges added without a weight carry DefaultWeight.
func (g *AdjacencyGraph) ToWeightedCSR() *WeightedCSRGraph {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.finalized = true

	offsets, edges := g.packLocked()
	weights := make([]float32, len(edges))
	for u := 0; u < g.n; u++ {
		dst := weights[offsets[u]:offsets[u+1]]
		if g.weights != nil && g.weights[u] != nil {
			copy(dst, g.weights[u])
			continue
		}
		for i := range dst {
			dst[i] = DefaultWeight
		}
	}

	return &WeightedCSRGraph{CSRGraph: CSRGraph{offsets: offsets, edges: edges}, weights: weights}
}

// packLocked computes offsets by prefix sum, then copies each list into place.
func (g *AdjacencyGraph) packLocked() ([]int, []int) {
	offsets := make([]int, g.n+1)
	for u, nbrs := range g.adj {
		offsets[u+1] = offsets[u] + len(nbrs)
	}
	edges := make([]int, offsets[g.n])
	for u, nbrs := range g.adj {
		copy(edges[offsets[u]:], nbrs)
	}

	return offsets, edges
}
