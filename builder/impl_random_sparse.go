// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(n, p) factory.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic without one.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (undirected uses j>i).
//   - Weights are drawn after all trials, in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/greedy/graph"
)

// RandomSparse samples an Erdős–Rényi-like graph over n vertices with
// independent edge probability p.
func RandomSparse(n int, p float64, opts ...Option) (*graph.Graph, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if err = validateMin(MethodRandomSparse, n, MinRandomVertices); err != nil {
		return nil, err
	}
	if err = validateProbability(MethodRandomSparse, p); err != nil {
		return nil, err
	}
	// RNG is only required when 0 < p < 1 (true stochastic sampling).
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
	}

	// 2) Bernoulli trials in a stable, documented order.
	keep := func() bool {
		if cfg.rng == nil {
			return p == MaxProbability
		}

		return cfg.rng.Float64() < p
	}
	var pairs []pair
	for i := 0; i < n; i++ {
		start := i + 1
		if cfg.directed {
			start = 0
		}
		for j := start; j < n; j++ {
			if i == j {
				continue
			}
			if keep() {
				pairs = append(pairs, pair{from: i, to: j})
			}
		}
	}

	return emit(MethodRandomSparse, n, pairs, cfg)
}
