// SPDX-License-Identifier: MIT
// Package: parlath/builder
//
// impl_topology.go - deterministic topologies: Path, Cycle, Star, OutStar,
// Grid, Complete, Isolated.
//
// Contract:
//   - Vertex ids are base+i in ascending order.
//   - Edges are emitted in a stable, documented order.
//   - Weights come from cfg.weightFn when configured.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parlath/core"
)

// Path builds the directed path 0→1→…→n-1 (n ≥ 2).
func Path(n int) Constructor {
	if n < minPathNodes {
		return invalid(MethodPath, fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, minPathNodes, ErrTooFewVertices))
	}

	return Constructor{name: MethodPath, size: n, build: func(g *core.AdjacencyGraph, base int, cfg builderConfig) error {
		for i := 1; i < n; i++ {
			if err := cfg.addEdge(MethodPath, g, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}}
}

// Cycle builds the directed cycle 0→1→…→n-1→0 (n ≥ 3).
func Cycle(n int) Constructor {
	if n < minCycleNodes {
		return invalid(MethodCycle, fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, minCycleNodes, ErrTooFewVertices))
	}

	return Constructor{name: MethodCycle, size: n, build: func(g *core.AdjacencyGraph, base int, cfg builderConfig) error {
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(MethodCycle, g, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}}
}

// Star builds a hub (the block's first vertex) with the given number of
// leaves, every leaf pointing at the hub.
func Star(leaves int) Constructor {
	return star(MethodStar, leaves, true)
}

// OutStar is Star with edges pointing from the hub to each leaf.
func OutStar(leaves int) Constructor {
	return star(MethodOutStar, leaves, false)
}

func star(method string, leaves int, inbound bool) Constructor {
	if leaves < minStarLeaves {
		return invalid(method, fmt.Errorf("%s: leaves=%d < min=%d: %w", method, leaves, minStarLeaves, ErrTooFewVertices))
	}

	return Constructor{name: method, size: leaves + 1, build: func(g *core.AdjacencyGraph, base int, cfg builderConfig) error {
		for i := 1; i <= leaves; i++ {
			u, v := base+i, base
			if !inbound {
				u, v = v, u
			}
			if err := cfg.addEdge(method, g, u, v); err != nil {
				return err
			}
		}

		return nil
	}}
}

// Grid builds a rows×cols 4-neighborhood lattice with row-major ids. Every
// lattice edge is traversable both ways; on a directed graph both arcs are
// emitted (right then down, per cell).
func Grid(rows, cols int) Constructor {
	if rows < minGridSide || cols < minGridSide {
		return invalid(MethodGrid, fmt.Errorf("%s: %dx%d: %w", MethodGrid, rows, cols, ErrTooFewVertices))
	}

	return Constructor{name: MethodGrid, size: rows * cols, build: func(g *core.AdjacencyGraph, base int, cfg builderConfig) error {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					if err := cfg.addBoth(MethodGrid, g, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addBoth(MethodGrid, g, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}}
}

// Complete builds K_n: every ordered pair u≠v on a directed graph, every
// unordered pair once on an undirected one.
func Complete(n int) Constructor {
	if n < minCompleteNodes {
		return invalid(MethodComplete, fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices))
	}

	return Constructor{name: MethodComplete, size: n, build: func(g *core.AdjacencyGraph, base int, cfg builderConfig) error {
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v || (g.Undirected() && v < u) {
					continue
				}
				if err := cfg.addEdge(MethodComplete, g, base+u, base+v); err != nil {
					return err
				}
			}
		}

		return nil
	}}
}

// Isolated adds n vertices without edges.
func Isolated(n int) Constructor {
	if n < minIsolatedNodes {
		return invalid(MethodIsolated, fmt.Errorf("%s: n=%d < min=%d: %w", MethodIsolated, n, minIsolatedNodes, ErrTooFewVertices))
	}

	return Constructor{name: MethodIsolated, size: n, build: func(*core.AdjacencyGraph, int, builderConfig) error {
		return nil
	}}
}
