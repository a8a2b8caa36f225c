// prim.go - heap and array-scan variants of Prim's minimum spanning tree on
// an undirected *graph.Graph, growing the tree from a root.

package mst

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/greedy/graph"
	"github.com/katalvlaran/greedy/indexheap"
)

// inf is the key of a vertex not yet adjacent to the tree. Edge weights
// must stay below it.
const inf int64 = math.MaxInt64

// Prim computes the MST of the root's component using an indexed min-heap.
//
// Error Conditions:
//   - ErrOptionViolation : invalid option.
//   - ErrNilGraph        : g is nil.
//   - ErrDirectedGraph   : g is directed.
//   - ErrVertexNotFound  : root is outside [0, V).
//   - ErrDisconnected    : only with WithRequireSpanning.
//
// Steps:
//  1. Validate options, graph and root.
//  2. key[v] = +∞ for all v, key[root] = 0; build the heap over all keys.
//  3. Extract the minimum u. If its key is +∞, every remaining vertex is
//     outside the root's component: stop.
//  4. For each (u, v, w) with v still in the heap and w < key[v], set
//     key[v] = w, parent[v] = u and decrease v's key.
//  5. Emit (parent[v], v, key[v]) for v ascending.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Prim(g *graph.Graph, opts ...Option) (*Result, error) {
	cfg, root, err := validatePrim(g, opts)
	if err != nil {
		return nil, err
	}
	began := time.Now()

	// 2. Initialise keys, parents and the heap.
	n := g.VertexCount()
	key, parent := initKeys(n, root)
	h := indexheap.Build(key)
	var comparisons int64

	for h.Len() > 0 {
		// 3. Closest vertex; +∞ means the component is exhausted.
		u, ku, _ := h.ExtractMin()
		if ku == inf {
			break
		}
		if parent[u] != NoParent {
			cfg.OnAccept(graph.Edge{From: parent[u], To: u, Weight: ku})
		}

		// 4. Relax u's neighbors.
		for _, nb := range g.Neighbors(u) {
			comparisons++
			v := nb.To
			if h.Contains(v) && nb.Weight < key[v] {
				key[v] = nb.Weight
				parent[v] = u
				// nb.Weight < key[v] == heap key, so DecreaseKey cannot fail
				_ = h.DecreaseKey(v, nb.Weight)
			}
		}
	}

	res := collect(key, parent)
	res.Stats = Stats{Comparisons: comparisons, Elapsed: time.Since(began)}
	if err = checkSpanning(cfg, res, n); err != nil {
		return nil, err
	}

	return res, nil
}

// PrimArray computes the same tree as Prim with an O(V) linear scan for the
// minimum key instead of a heap. It is the dense-graph baseline.
//
// Error Conditions match Prim.
//
// Complexity: O(V² + E) time, O(V) memory.
func PrimArray(g *graph.Graph, opts ...Option) (*Result, error) {
	cfg, root, err := validatePrim(g, opts)
	if err != nil {
		return nil, err
	}
	began := time.Now()

	n := g.VertexCount()
	key, parent := initKeys(n, root)
	inTree := bits.New(n)
	var comparisons int64

	for count := 0; count < n; count++ {
		// 1) Linear scan for the minimum finite key outside the tree.
		u, ku := -1, inf
		for v := 0; v < n; v++ {
			comparisons++
			if inTree.Bit(v) == 0 && key[v] < ku {
				u, ku = v, key[v]
			}
		}
		if u == -1 {
			// nothing reachable is left outside the tree
			break
		}
		inTree.SetBit(u, 1)
		if parent[u] != NoParent {
			cfg.OnAccept(graph.Edge{From: parent[u], To: u, Weight: ku})
		}

		// 2) Update keys of u's neighbors.
		for _, nb := range g.Neighbors(u) {
			comparisons++
			v := nb.To
			if inTree.Bit(v) == 0 && nb.Weight < key[v] {
				key[v] = nb.Weight
				parent[v] = u
			}
		}
	}

	res := collect(key, parent)
	res.Stats = Stats{Comparisons: comparisons, Elapsed: time.Since(began)}
	if err = checkSpanning(cfg, res, n); err != nil {
		return nil, err
	}

	return res, nil
}

// validatePrim resolves options and checks the graph and root.
func validatePrim(g *graph.Graph, opts []Option) (Options, int, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return cfg, 0, err
	}
	if g == nil {
		return cfg, 0, ErrNilGraph
	}
	if g.Directed() {
		return cfg, 0, ErrDirectedGraph
	}
	if !g.HasVertex(cfg.Root) {
		return cfg, 0, fmt.Errorf("%w: %d (V=%d)", ErrVertexNotFound, cfg.Root, g.VertexCount())
	}

	return cfg, cfg.Root, nil
}

// initKeys returns key = +∞ except key[root] = 0, and parent = NoParent.
func initKeys(n, root int) ([]int64, []int) {
	key := make([]int64, n)
	parent := make([]int, n)
	for v := 0; v < n; v++ {
		key[v] = inf
		parent[v] = NoParent
	}
	key[root] = 0

	return key, parent
}

// collect emits (parent[v], v, key[v]) for every v with a parent, v ascending.
func collect(key []int64, parent []int) *Result {
	res := &Result{Parent: parent}
	for v, p := range parent {
		if p == NoParent {
			continue
		}
		res.Edges = append(res.Edges, graph.Edge{From: p, To: v, Weight: key[v]})
		res.TotalWeight += key[v]
	}

	return res
}
