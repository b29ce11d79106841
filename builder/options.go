// SPDX-License-Identifier: MIT
// Package: parlath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// the graph is built.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn makes every emitted edge weighted with fn(rng).
// fn must return finite, non-negative values. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithAttachment sets how many edges each new vertex adds in PowerLaw.
// Panics if m < 1.
func WithAttachment(m int) BuilderOption {
	if m < 1 {
		panic(fmt.Sprintf("builder: WithAttachment(%d): m must be >= 1", m))
	}

	return func(c *builderConfig) {
		c.attachment = m
	}
}

// WithSelfLoops lets RandomGraph draw u→u edges.
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) {
		c.selfLoops = true
	}
}
