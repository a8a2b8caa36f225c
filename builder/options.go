// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE; a meaningless input is recorded and the
//     factory returns ErrOptionViolation. Nothing panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand" // RNG source for stochastic builders
)

// Option customizes a factory by mutating a builderConfig instance before
// graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// A nil RNG is recorded as ErrOptionViolation; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r == nil {
			c.fail(fmt.Errorf("WithRand(nil): %w", ErrOptionViolation))
			return
		}
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		// Seeded source → reproducible shuffles/draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function
// receives the (possibly nil) RNG. A nil fn is recorded as ErrOptionViolation.
func WithWeightFn(fn WeightFn) Option {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail(fmt.Errorf("WithWeightFn(nil): %w", ErrOptionViolation))
			return
		}
		c.weightFn = fn
		c.distinct = false
	}
}

// WithDistinctWeights assigns every edge a unique weight from 1..E. With an
// RNG the assignment is a seeded permutation; without one, weights follow
// emission order. Overrides any weight function.
func WithDistinctWeights() Option {
	return func(c *builderConfig) {
		c.distinct = true
	}
}

// WithDirected produces a directed graph. Factories emit every edge once in
// the documented direction; Complete and Grid also emit the reverse arc.
func WithDirected() Option {
	return func(c *builderConfig) {
		c.directed = true
	}
}
