// SPDX-License-Identifier: MIT
// Package: parlath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng        = nil   (stochastic constructors fail with ErrNeedRandSource)
//   - weightFn   = nil   (edges are unweighted)
//   - attachment = DefaultAttachment
//   - selfLoops  = false

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/parlath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng        *rand.Rand
	weightFn   WeightFn
	attachment int
	selfLoops  bool
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{attachment: DefaultAttachment}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// addEdge emits u→v, weighted when a weight function is configured.
func (c builderConfig) addEdge(method string, g *core.AdjacencyGraph, u, v int) error {
	var err error
	if c.weightFn != nil {
		err = g.AddWeightedEdge(u, v, c.weightFn(c.rng))
	} else {
		err = g.AddEdge(u, v)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// addBoth emits u→v and, unless the graph mirrors edges itself, v→u.
func (c builderConfig) addBoth(method string, g *core.AdjacencyGraph, u, v int) error {
	if err := c.addEdge(method, g, u, v); err != nil {
		return err
	}
	if g.Undirected() {
		return nil
	}

	return c.addEdge(method, g, v, u)
}
