// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// impl_grid.go - implementation of the Grid(rows, cols) factory.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex index is r*cols + c (row-major), matching astar.Map.Index.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they exist.
//     In directed graphs, also emits the reverse arc for symmetry.
//   • Returns only sentinel errors; never panics.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges (linear in grid size).
//
// Determinism:
//   • Stable edge order: for each (r,c) in row-major order emit Right then Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/greedy/graph"
)

// Grid builds a rows×cols orthogonal grid.
func Grid(rows, cols int, opts ...Option) (*graph.Graph, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}
	// 1) Validate parameters early (fail fast; no partial work).
	if rows < MinGridDim || cols < MinGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
	}

	// 2) Plan edges: for each (r,c), connect to Right and Bottom neighbors if they exist.
	pairs := make([]pair, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				pairs = append(pairs, pair{from: u, to: u + 1})
			}
			if r+1 < rows {
				pairs = append(pairs, pair{from: u, to: u + cols})
			}
		}
	}

	return emit(MethodGrid, rows*cols, symmetric(pairs, cfg), cfg)
}
