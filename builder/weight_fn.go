// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// weight_fn.go - edge-weight policies for graph factories.
//
// Weights stay within [0, graph.MaxWeight]; options outside that range are
// recorded as ErrOptionViolation.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/greedy/graph"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// constantWeightFn returns a WeightFn that always yields value.
func constantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// uniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// If rng is nil it yields min, keeping the fallback deterministic.
func uniformWeightFn(min, max int64) WeightFn {
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight sets a fixed edge weight. A value outside
// [0, graph.MaxWeight] is recorded as ErrOptionViolation.
// Complexity: O(1).
func WithConstantWeight(w int64) Option {
	return func(c *builderConfig) {
		if w < 0 || w > graph.MaxWeight {
			c.fail(fmt.Errorf("WithConstantWeight: require 0 ≤ w ≤ %d, got %d: %w", graph.MaxWeight, w, ErrOptionViolation))
			return
		}
		c.weightFn = constantWeightFn(w)
		c.distinct = false
	}
}

// WithUniformWeight sets weights ∼ U[min,max]. Requires
// 0 ≤ min ≤ max ≤ graph.MaxWeight, otherwise ErrOptionViolation is recorded.
// The upper bound keeps max-min+1 within int64. Draws need an RNG to vary.
// Complexity: O(1).
func WithUniformWeight(min, max int64) Option {
	return func(c *builderConfig) {
		if min < 0 || max < min || max > graph.MaxWeight {
			c.fail(fmt.Errorf("WithUniformWeight: require 0 ≤ min ≤ max ≤ %d, got min=%d, max=%d: %w",
				graph.MaxWeight, min, max, ErrOptionViolation))
			return
		}
		c.weightFn = uniformWeightFn(min, max)
		c.distinct = false
	}
}
