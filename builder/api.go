// SPDX-License-Identifier: MIT
// Package: parlath/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Sums the constructor
//     sizes, creates one core.AdjacencyGraph, runs constructors in order.
//   - Each constructor owns a disjoint block of consecutive vertex ids; the
//     first block starts at 0, the next one right after it, and so on.
//   - Determinism: same inputs, options, seed and constructor order ⇒ same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parlath/core"
)

// Constructor describes one block of a fixture graph: its vertex count and
// the edges it emits among vertices base..base+Size()-1.
type Constructor struct {
	name  string
	size  int
	err   error
	build func(g *core.AdjacencyGraph, base int, cfg builderConfig) error
}

// Name returns the constructor's method name.
func (c Constructor) Name() string { return c.name }

// Size returns the number of vertices the block occupies.
func (c Constructor) Size() int { return c.size }

// invalid returns a Constructor that fails BuildGraph with err.
func invalid(method string, err error) Constructor {
	return Constructor{name: method, err: err}
}

// BuildGraph creates a core.AdjacencyGraph with graph options gopts, resolves
// the builder configuration from bopts, and lays every constructor out as a
// disjoint block. The first error is wrapped with "BuildGraph: %w".
//
// Complexity: O(V + E) over all blocks.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.AdjacencyGraph, error) {
	cfg := newBuilderConfig(bopts...)

	total := 0
	for i, c := range cons {
		if c.err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", c.err)
		}
		if c.build == nil {
			return nil, fmt.Errorf("BuildGraph: zero constructor at index %d: %w", i, ErrConstructFailed)
		}
		total += c.size
	}

	g := core.NewAdjacencyGraph(total, gopts...)
	base := 0
	for _, c := range cons {
		if err := c.build(g, base, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		base += c.size
	}

	return g, nil
}

// GenerateRandomGraph builds a directed graph on n vertices where every vertex
// draws avgDegree uniform out-neighbors. Requires WithSeed or WithRand.
func GenerateRandomGraph(n, avgDegree int, opts ...BuilderOption) (*core.AdjacencyGraph, error) {
	return BuildGraph(nil, opts, RandomGraph(n, avgDegree))
}

// GeneratePowerLawGraph builds a preferential-attachment graph on n vertices
// with a heavy-tailed in-degree distribution. Requires WithSeed or WithRand.
func GeneratePowerLawGraph(n int, opts ...BuilderOption) (*core.AdjacencyGraph, error) {
	return BuildGraph(nil, opts, PowerLaw(n))
}
