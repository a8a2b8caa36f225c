// kruskal.go - Kruskal's minimum spanning forest over a *graph.EdgeList.

package mst

import (
	"sort"
	"time"

	"github.com/katalvlaran/greedy/graph"
	"github.com/katalvlaran/greedy/unionfind"
)

// Kruskal computes a minimum spanning forest of the undirected edge list el.
// It uses unionfind with full path compression and union by rank.
//
// Error Conditions:
//   - ErrOptionViolation : invalid option.
//   - ErrNilGraph        : el is nil.
//   - ErrDisconnected    : only with WithRequireSpanning, when fewer than V-1 edges were accepted.
//
// Steps:
//  1. Copy the edges; the caller's list is never reordered.
//  2. Stable sort by ascending weight, so ties keep insertion order.
//  3. Accept an edge iff Union(from, to) merges two components. Self-loops
//     never merge, so they are rejected without a special case.
//  4. Stop once V-1 edges are accepted.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(el *graph.EdgeList, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, ErrNilGraph
	}
	began := time.Now()
	var comparisons int64

	// 1-2. Sort a private copy by ascending weight.
	edges := el.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		comparisons++
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Build the forest.
	n := el.VertexCount()
	uf, err := unionfind.New(n)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, e := range edges {
		// 4. A spanning tree is complete.
		if len(res.Edges) == n-1 {
			break
		}
		comparisons++
		if !uf.Union(e.From, e.To) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		cfg.OnAccept(e)
	}

	res.Stats = Stats{Comparisons: comparisons, Elapsed: time.Since(began)}
	if err = checkSpanning(cfg, res, n); err != nil {
		return nil, err
	}

	return res, nil
}
