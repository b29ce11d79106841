// File: types.go
// Role: sentinel errors, edge records and GraphOption for AdjacencyGraph.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction and CSR validation.
var (
	// ErrInvalidVertex indicates an edge endpoint outside [0, n).
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative weight")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: weight is NaN or infinite")

	// ErrFinalized indicates a mutation after the graph was converted to CSR.
	ErrFinalized = errors.New("core: graph already finalized")

	// ErrMalformedCSR indicates raw CSR arrays that violate the layout invariants.
	ErrMalformedCSR = errors.New("core: malformed CSR arrays")
)

// DefaultWeight is the weight carried by edges added without one when a
// weighted view is requested.
const DefaultWeight float32 = 1

// Edge is an unweighted directed edge From→To.
type Edge struct {
	From, To int
}

// WeightedEdge is a directed edge From→To with a non-negative Weight.
type WeightedEdge struct {
	From, To int
	Weight   float32
}

// GraphOption configures an AdjacencyGraph before any edges are added.
type GraphOption func(g *AdjacencyGraph)

// WithUndirected makes every AddEdge(u, v) also store v→u. Both directions
// count toward NumEdges.
func WithUndirected() GraphOption {
	return func(g *AdjacencyGraph) {
		g.undirected = true
	}
}

// WithDegreeHint preallocates each neighbor list for d entries.
// Panics if d < 0.
func WithDegreeHint(d int) GraphOption {
	if d < 0 {
		panic(fmt.Sprintf("core: WithDegreeHint(%d): must be >= 0", d))
	}

	return func(g *AdjacencyGraph) {
		g.degreeHint = d
	}
}

// checkWeight reports whether w may be stored on an edge.
func checkWeight(w float32) error {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeWeight, w)
	}

	return nil
}
