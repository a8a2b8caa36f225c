// Package graph provides the two graph representations consumed by the
// greedy algorithms in this module:
//
//   - Graph: an adjacency list keyed by dense vertex index 0..V-1. Each vertex
//     owns an ordered slice of (neighbor, weight) pairs. Undirected edges are
//     stored as two directed entries, one per endpoint, appended when AddEdge
//     is called. Used by Dijkstra and both Prim variants.
//
//   - EdgeList: a capacity-bounded sequence of (from, to, weight) records over
//     a fixed vertex count. Used by Kruskal.
//
// Both forms are created with a fixed vertex count and grow monotonically:
// there is no vertex or edge removal.
//
// Ordering:
//
//	Neighbors(v) yields entries in insertion order. Algorithms iterate that
//	order, so when several equal-weight trees or paths exist, insertion order
//	decides which one is produced (never its total weight).
//
// Errors:
//
//   - ErrInvalidVertexCount: vertex count ≤ 0.
//   - ErrInvalidCapacity:    edge-list capacity ≤ 0.
//   - ErrVertexOutOfRange:   an endpoint outside [0, V).
//   - ErrCapacityExceeded:   edge-list already holds Cap() edges.
//
// Every failing mutation leaves the graph unchanged.
//
// Complexity:
//
//   - New / NewEdgeList: O(V) / O(capacity).
//   - AddEdge:           amortized O(1).
//   - Neighbors:         O(1) (returns a view, not a copy).
package graph
