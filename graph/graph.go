package graph

import "fmt"

// Graph is a weighted adjacency-list graph over vertices 0..V-1.
//
// adj[v] holds v's outgoing entries in insertion order; for undirected graphs
// each AddEdge appends one entry to both endpoints. edges logs every AddEdge
// call once, in insertion order, so the graph can be re-exported as an
// EdgeList without duplicating undirected edges.
type Graph struct {
	n        int
	directed bool
	adj      [][]Neighbor
	edges    []Edge
}

// New creates a graph with n vertices and no edges.
// Returns ErrInvalidVertexCount if n ≤ 0.
//
// Complexity: O(n).
func New(n int, opts ...Option) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, n)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		n:        n,
		directed: cfg.Directed,
		adj:      make([][]Neighbor, n),
	}, nil
}

// AddEdge appends the edge from→to with weight w.
// In undirected mode the mirror entry to→from is appended as well.
// Returns ErrVertexOutOfRange if either endpoint is outside [0, V) and
// ErrWeightOutOfRange if w exceeds MaxWeight, leaving the graph untouched.
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(from, to int, w int64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: edge %d→%d in graph of %d vertices", ErrVertexOutOfRange, from, to, g.n)
	}
	if w > MaxWeight {
		return fmt.Errorf("%w: %d", ErrWeightOutOfRange, w)
	}

	g.adj[from] = append(g.adj[from], Neighbor{To: to, Weight: w})
	if !g.directed {
		g.adj[to] = append(g.adj[to], Neighbor{To: from, Weight: w})
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: w})

	return nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of AddEdge calls that succeeded.
// An undirected edge counts once.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether the graph stores one-way edges.
func (g *Graph) Directed() bool { return g.directed }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Neighbors returns v's adjacency entries in insertion order, or nil if v
// is out of range. The returned slice aliases internal storage and must
// not be modified.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []Neighbor {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Edges returns a copy of the edge log in insertion order.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
