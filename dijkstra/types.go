// Package dijkstra defines error sentinels and configuration options for the
// sequential Dijkstra reference solver over core.WeightedCSRGraph.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a source outside [0, n).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates an InfEdgeThreshold <= 0.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoPredecessor marks the source and unreachable vertices in prev.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – vertices whose distance would exceed this are not explored.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
type Options struct {
	ReturnPath       bool
	MaxDistance      float32
	InfEdgeThreshold float32
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration at max. Panics on negative or NaN input.
func WithMaxDistance(max float32) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics if threshold <= 0.
func WithInfEdgeThreshold(threshold float32) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns options without caps and without predecessors.
func DefaultOptions() Options {
	inf := float32(math.Inf(1))

	return Options{
		ReturnPath:       false,
		MaxDistance:      inf,
		InfEdgeThreshold: inf,
	}
}
