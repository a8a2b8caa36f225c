package graph

import "fmt"

// EdgeList is the edge-list graph form used by Kruskal: a growable
// sequence of (from, to, weight) records over a fixed vertex count, bounded
// by a capacity ceiling. Invariant: 0 ≤ Len() ≤ Cap().
type EdgeList struct {
	n     int
	cap   int
	edges []Edge
}

// NewEdgeList creates an empty edge list over n vertices that accepts at
// most capacity edges.
// Returns ErrInvalidVertexCount if n ≤ 0 and ErrInvalidCapacity if capacity ≤ 0.
func NewEdgeList(n, capacity int) (*EdgeList, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, n)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &EdgeList{
		n:     n,
		cap:   capacity,
		edges: make([]Edge, 0, capacity),
	}, nil
}

// AddEdge appends the undirected edge from-to with weight w.
// Returns ErrCapacityExceeded when the list is full, ErrVertexOutOfRange
// when an endpoint is outside [0, V) and ErrWeightOutOfRange when w exceeds
// MaxWeight; in every case nothing is appended.
func (el *EdgeList) AddEdge(from, to int, w int64) error {
	if len(el.edges) >= el.cap {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, el.cap)
	}
	if from < 0 || from >= el.n || to < 0 || to >= el.n {
		return fmt.Errorf("%w: edge %d-%d in graph of %d vertices", ErrVertexOutOfRange, from, to, el.n)
	}
	if w > MaxWeight {
		return fmt.Errorf("%w: %d", ErrWeightOutOfRange, w)
	}
	el.edges = append(el.edges, Edge{From: from, To: to, Weight: w})

	return nil
}

// VertexCount returns V.
func (el *EdgeList) VertexCount() int { return el.n }

// Len returns the number of stored edges.
func (el *EdgeList) Len() int { return len(el.edges) }

// Cap returns the capacity ceiling.
func (el *EdgeList) Cap() int { return el.cap }

// Edges returns a copy of the stored edges in insertion order.
func (el *EdgeList) Edges() []Edge {
	out := make([]Edge, len(el.edges))
	copy(out, el.edges)

	return out
}
