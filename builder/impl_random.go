// SPDX-License-Identifier: MIT
// Package: parlath/builder
//
// impl_random.go - stochastic topologies: RandomGraph and PowerLaw.
//
// Contract:
//   - Require cfg.rng (else ErrNeedRandSource).
//   - Deterministic for a fixed seed and option set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parlath/core"
)

// RandomGraph gives every vertex avgDegree out-edges to uniformly drawn
// targets. Parallel edges may occur; self-loops only WithSelfLoops.
//
// Complexity: O(n·avgDegree).
func RandomGraph(n, avgDegree int) Constructor {
	if n < minRandomNodes {
		return invalid(MethodRandomGraph, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomGraph, n, minRandomNodes, ErrTooFewVertices))
	}
	if avgDegree < 0 {
		return invalid(MethodRandomGraph, fmt.Errorf("%s: avgDegree=%d: %w", MethodRandomGraph, avgDegree, ErrTooFewVertices))
	}

	return Constructor{name: MethodRandomGraph, size: n, build: func(g *core.AdjacencyGraph, base int, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomGraph, ErrNeedRandSource)
		}
		if n == 1 && !cfg.selfLoops {
			return nil
		}
		for u := 0; u < n; u++ {
			for k := 0; k < avgDegree; k++ {
				v := cfg.rng.Intn(n)
				if v == u && !cfg.selfLoops {
					// shift to a uniformly drawn other vertex
					v = (u + 1 + cfg.rng.Intn(n-1)) % n
				}
				if err := cfg.addEdge(MethodRandomGraph, g, base+u, base+v); err != nil {
					return err
				}
			}
		}

		return nil
	}}
}

// PowerLaw grows a Barabási–Albert style graph: vertex u (u ≥ 1) adds
// min(m, u) edges u→t to distinct older vertices t drawn with probability
// proportional to their current degree. The result has a few heavy hubs and
// a long tail of low-degree vertices. m is set WithAttachment.
//
// Complexity: O(n·m) expected.
func PowerLaw(n int) Constructor {
	if n < minPowerLawNodes {
		return invalid(MethodPowerLaw, fmt.Errorf("%s: n=%d < min=%d: %w", MethodPowerLaw, n, minPowerLawNodes, ErrTooFewVertices))
	}

	return Constructor{name: MethodPowerLaw, size: n, build: func(g *core.AdjacencyGraph, base int, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodPowerLaw, ErrNeedRandSource)
		}
		m := cfg.attachment
		// every edge endpoint appears once, so a uniform pick is degree-biased
		endpoints := make([]int, 0, 2*n*m)
		targets := make([]int, 0, m)

		for u := 1; u < n; u++ {
			k := m
			if u < k {
				k = u
			}
			targets = targets[:0]
			for len(targets) < k {
				var t int
				for try := 0; ; try++ {
					if len(endpoints) == 0 || try >= maxAttachTries {
						t = cfg.rng.Intn(u)
					} else {
						t = endpoints[cfg.rng.Intn(len(endpoints))]
					}
					if !containsInt(targets, t) {
						break
					}
				}
				targets = append(targets, t)
			}
			for _, t := range targets {
				if err := cfg.addEdge(MethodPowerLaw, g, base+u, base+t); err != nil {
					return err
				}
				endpoints = append(endpoints, u, t)
			}
		}

		return nil
	}}
}

func containsInt(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}

	return false
}
