// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// helpers.go - turns a planned edge sequence into a *graph.Graph.
//
// Design:
//   • Factories plan endpoints; emit assigns weights and builds the graph.
//   • Errors are wrapped with the factory name.
//   • Weights are drawn after planning, in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/greedy/graph"
)

// pair is a planned edge from → to.
type pair struct{ from, to int }

// emit creates an n-vertex graph in the configured direction mode and adds
// pairs in order, each with a weight from cfg.
//
// Complexity: O(n + len(pairs)) time, O(len(pairs)) extra space for a
// distinct-weight permutation.
func emit(method string, n int, pairs []pair, cfg builderConfig) (*graph.Graph, error) {
	var gopts []graph.Option
	if cfg.directed {
		gopts = append(gopts, graph.WithDirected())
	}
	g, err := graph.New(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// Distinct weights: permutation of 1..E, identity without an RNG.
	var perm []int
	if cfg.distinct {
		if cfg.rng != nil {
			perm = cfg.rng.Perm(len(pairs))
		} else {
			perm = make([]int, len(pairs))
			for i := range perm {
				perm[i] = i
			}
		}
	}

	var w int64
	for i, p := range pairs {
		if perm != nil {
			w = int64(perm[i]) + 1
		} else {
			w = cfg.weightFn(cfg.rng)
		}
		if err = g.AddEdge(p.from, p.to, w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, p.from, p.to, w, err)
		}
	}

	return g, nil
}

// symmetric appends the reverse arc of every pair when cfg is directed, so
// symmetric topologies keep both directions.
func symmetric(pairs []pair, cfg builderConfig) []pair {
	if !cfg.directed {
		return pairs
	}
	out := make([]pair, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p, pair{from: p.to, to: p.from})
	}

	return out
}
