// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// impl_path.go - implementation of the Path(n) factory.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng), or a distinct permutation.
//   - Returns only sentinel errors; never panics.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(n) for the planned edge sequence.

package builder

import (
	"github.com/katalvlaran/greedy/graph"
)

// Path builds a simple path P_n.
func Path(n int, opts ...Option) (*graph.Graph, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}
	// Validate parameter domain early.
	if err = validateMin(MethodPath, n, MinPathNodes); err != nil {
		return nil, err
	}

	// Plan path edges from 0->1->2->...->(n-1) in stable order.
	pairs := make([]pair, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, pair{from: i - 1, to: i})
	}

	return emit(MethodPath, n, pairs, cfg)
}
