// Package builder provides helper functions for edge-weight distributions
// used by graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight ConstantWeightFn and nil-RNG fallbacks yield.
const DefaultEdgeWeight float32 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float32

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float32) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float32 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max).
// Panics if min < 0 or max < min. With a nil rng it yields DefaultEdgeWeight.
func UniformWeightFn(min, max float32) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float32 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float32()*(max-min)
	}
}

// IntegerWeightFn samples integers uniformly in [min, max]. Integer weights
// keep path sums exact in float32, which makes distance comparisons strict.
// Panics if min < 0 or max < min.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float32 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float32(min + rng.Intn(max-min+1))
	}
}
