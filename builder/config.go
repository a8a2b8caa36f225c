// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • directed  = false
//   • distinct  = false

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by factories.
// It is passed by VALUE to helpers (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Directed selects graph.WithDirected for the produced graph.
	directed bool
	// Distinct replaces weightFn with a permutation of 1..E.
	distinct bool

	// First option violation, surfaced by the factory.
	err error
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. The first recorded violation wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) (builderConfig, error) {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		rng:      nil,             // no RNG unless explicitly set
		weightFn: DefaultWeightFn, // constant weight
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// fail records the first option violation.
func (c *builderConfig) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
