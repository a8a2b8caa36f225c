// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// impl_random_connected.go - implementation of the RandomConnected(n, extra) factory.
//
// Canonical model:
//   - Random recursive tree: vertex v (v=1..n-1) attaches to a uniformly chosen
//     earlier vertex u < v, emitted as u → v. Every vertex is reachable from 0,
//     in directed mode too.
//   - Then extra additional edges between uniformly chosen distinct endpoints.
//     Parallel edges are possible.
//
// Contract:
//   - n ≥ 1 and extra ≥ 0 (else ErrTooFewVertices); extra > 0 needs n ≥ 2.
//   - Requires an RNG (else ErrNeedRandSource), unless n == 1.
//
// Complexity:
//   - Time: O(n + extra).

package builder

import (
	"fmt"

	"github.com/katalvlaran/greedy/graph"
)

// RandomConnected builds a connected graph with n-1 tree edges plus extra
// random edges.
func RandomConnected(n, extra int, opts ...Option) (*graph.Graph, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err = validateMin(MethodRandomConnected, n, MinRandomVertices); err != nil {
		return nil, err
	}
	if err = validateMin(MethodRandomConnected, extra, 0); err != nil {
		return nil, err
	}
	if extra > 0 && n < 2 {
		return nil, fmt.Errorf("%s: %d extra edges need at least 2 vertices: %w",
			MethodRandomConnected, extra, ErrTooFewVertices)
	}
	if n == 1 {
		return emit(MethodRandomConnected, n, nil, cfg)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomConnected, ErrNeedRandSource)
	}

	pairs := make([]pair, 0, n-1+extra)
	// 1) Spanning tree, parents chosen among earlier vertices.
	for v := 1; v < n; v++ {
		pairs = append(pairs, pair{from: cfg.rng.Intn(v), to: v})
	}
	// 2) Extra edges between distinct endpoints.
	for k := 0; k < extra; k++ {
		u := cfg.rng.Intn(n)
		v := cfg.rng.Intn(n - 1)
		if v >= u {
			v++
		}
		pairs = append(pairs, pair{from: u, to: v})
	}

	return emit(MethodRandomConnected, n, pairs, cfg)
}
