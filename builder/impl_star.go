// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// impl_star.go - implementation of the Star(n) factory.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center is vertex CenterVertex (0); emits 0 → i for i=1..n-1.
//   - Returns only sentinel errors; never panics.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"github.com/katalvlaran/greedy/graph"
)

// Star builds a star with center 0 and n-1 leaves.
func Star(n int, opts ...Option) (*graph.Graph, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err = validateMin(MethodStar, n, MinStarNodes); err != nil {
		return nil, err
	}

	pairs := make([]pair, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, pair{from: CenterVertex, to: i})
	}

	return emit(MethodStar, n, pairs, cfg)
}
