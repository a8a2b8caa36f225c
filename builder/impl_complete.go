// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// impl_complete.go - implementation of the Complete(n) factory.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 has no edges.
//   - Emits every unordered pair {i,j}, i<j, in lexicographic order.
//     Directed graphs also get the reverse arc j → i right after i → j.
//   - Returns only sentinel errors; never panics.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges.

package builder

import (
	"github.com/katalvlaran/greedy/graph"
)

// Complete builds the complete simple graph K_n.
func Complete(n int, opts ...Option) (*graph.Graph, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err = validateMin(MethodComplete, n, MinRandomVertices); err != nil {
		return nil, err
	}

	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{from: i, to: j})
		}
	}

	return emit(MethodComplete, n, symmetric(pairs, cfg), cfg)
}
