// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// impl_cycle.go - implementation of the Cycle(n) factory.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i → (i+1) mod n for i=0..n-1; the closing edge (n-1) → 0 is last.
//   - Returns only sentinel errors; never panics.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.

package builder

import (
	"github.com/katalvlaran/greedy/graph"
)

// Cycle builds an n-vertex simple cycle C_n.
func Cycle(n int, opts ...Option) (*graph.Graph, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err = validateMin(MethodCycle, n, MinCycleNodes); err != nil {
		return nil, err
	}

	pairs := make([]pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, pair{from: i, to: (i + 1) % n})
	}

	return emit(MethodCycle, n, pairs, cfg)
}
