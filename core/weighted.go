// File: weighted.go
// Role: WeightedCSRGraph, a CSRGraph with a weight per edge.

package core

import "fmt"

// WeightedCSRGraph is a CSRGraph plus weights parallel to the edge array.
// Every weight is finite and >= 0.
type WeightedCSRGraph struct {
	CSRGraph
	weights []float32
}

// NewWeightedCSR adopts raw arrays after validating the CSR layout and every
// weight. The slices are not copied.
func NewWeightedCSR(offsets, edges []int, weights []float32) (*WeightedCSRGraph, error) {
	g := &WeightedCSRGraph{CSRGraph: CSRGraph{offsets: offsets, edges: edges}, weights: weights}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate checks the CSR layout plus len(weights)==len(edges) and weight sanity.
func (g *WeightedCSRGraph) Validate() error {
	if err := g.CSRGraph.Validate(); err != nil {
		return err
	}
	if len(g.weights) != len(g.edges) {
		return fmt.Errorf("%w: %d weights for %d edges", ErrMalformedCSR, len(g.weights), len(g.edges))
	}
	for i, w := range g.weights {
		if err := checkWeight(w); err != nil {
			return fmt.Errorf("core: weights[%d]: %w", i, err)
		}
	}

	return nil
}

// NeighborWeights returns the weights of v's edges, aligned with Neighbors(v).
func (g *WeightedCSRGraph) NeighborWeights(v int) []float32 {
	return g.weights[g.offsets[v]:g.offsets[v+1]]
}

// Weights exposes the weight array (read-only).
func (g *WeightedCSRGraph) Weights() []float32 { return g.weights }

// MaxWeight returns the largest edge weight, 0 when there are no edges.
func (g *WeightedCSRGraph) MaxWeight() float32 {
	var best float32
	for _, w := range g.weights {
		if w > best {
			best = w
		}
	}

	return best
}

// Unweighted returns the structural CSRGraph sharing the same arrays.
func (g *WeightedCSRGraph) Unweighted() *CSRGraph { return &g.CSRGraph }

// Transpose returns the reverse graph with weights carried along.
func (g *WeightedCSRGraph) Transpose() *WeightedCSRGraph {
	offsets, edges, weights := transpose(g.offsets, g.edges, g.weights)

	return &WeightedCSRGraph{CSRGraph: CSRGraph{offsets: offsets, edges: edges}, weights: weights}
}
