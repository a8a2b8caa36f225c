// Package unionfind provides a fixed-size disjoint-set (union-find)
// structure over elements 0..n-1 with full path compression and union by
// rank.
//
// Invariants:
//
//   - Find(v) always terminates at a root r with parent[r] == r.
//   - After Find(v) returns, every node visited on the way up points
//     directly at the root, so an immediate second Find(v) takes one hop.
//   - rank is only meaningful for roots and never decreases.
//
// The structure is append-only: sets can be merged but never split.
//
// Complexity: Find and Union run in amortized O(α(n)); memory is O(n).
package unionfind

import (
	"errors"
	"fmt"
)

// NoRoot is returned by Find for an element outside [0, n).
const NoRoot = -1

// ErrInvalidSize indicates a non-positive element count.
var ErrInvalidSize = errors.New("unionfind: size must be positive")

// UnionFind is a disjoint-set forest. Each element starts as its own set.
type UnionFind struct {
	parent []int
	rank   []int
	count  int // number of disjoint sets remaining
}

// New creates n singleton sets {0}, {1}, …, {n-1}.
// Returns ErrInvalidSize if n ≤ 0.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf, nil
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the root of v's set, or NoRoot if v is out of range.
// Every node on the path from v to the root is re-pointed at the root.
func (uf *UnionFind) Find(v int) int {
	if v < 0 || v >= len(uf.parent) {
		return NoRoot
	}

	// 1) Walk up to the root.
	root := v
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// 2) Second pass: compress every node on the path.
	for uf.parent[v] != root {
		next := uf.parent[v]
		uf.parent[v] = root
		v = next
	}

	return root
}

// Union merges the sets containing x and y and reports whether a merge
// happened. It returns false when x and y already share a root (for
// Kruskal: the edge would close a cycle) or when either is out of range.
//
// The lower-rank root is attached under the higher-rank one. On equal
// ranks y's root goes under x's root and x's root rank is incremented.
func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == NoRoot || rootY == NoRoot || rootX == rootY {
		return false
	}

	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
	uf.count--

	return true
}

// Connected reports whether x and y belong to the same set.
// Out-of-range elements are never connected.
func (uf *UnionFind) Connected(x, y int) bool {
	rootX := uf.Find(x)

	return rootX != NoRoot && rootX == uf.Find(y)
}
