// Package mst computes minimum spanning trees and forests of undirected
// *graph.Graph values with int64 edge weights.
//
// What & Why
//
//   - A minimum spanning tree of a connected, undirected, weighted graph is a
//     set of V-1 edges that connects every vertex with the smallest possible
//     total weight. On a disconnected graph the analogue is a minimum
//     spanning forest: one tree per connected component.
//   - Typical uses: cheapest network backbones, single-linkage clustering,
//     approximation subroutines such as the metric TSP 2-approximation.
//
// Algorithms Provided
//
//   - Prim(g, opts...)
//     Grows one tree from Options.Root. Candidate vertices live in an
//     indexheap.Heap keyed by their cheapest known connection; a lighter edge
//     lowers that key in place. Stops as soon as the extracted key is +∞, so
//     the result covers the root's component.
//     Time O((V + E) log V), space O(V).
//
//   - PrimArray(g, opts...)
//     The same tree, selecting the next vertex with a linear scan over a key
//     array. Better than the heap on dense graphs where E ≈ V².
//     Time O(V² + E), space O(V).
//
//   - Kruskal(el, opts...)
//     Sorts a copy of a *graph.EdgeList by weight (stable: ties keep insertion
//     order) and accepts every edge that joins two unionfind components.
//     Yields a spanning forest on disconnected input.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Compute(g, opts...)
//     Dispatches on Options.Method; Kruskal runs over g.EdgeList().
//
// Edge Emission
//
//	Prim and PrimArray emit (Parent[v], v, key[v]) for v ascending, so the two
//	produce identical Edges on the same graph whenever ties do not occur.
//	Kruskal emits edges in acceptance order. OnAccept always observes
//	acceptance order.
//
// Error Conditions
//
//   - ErrNilGraph        : nil graph or edge list.
//   - ErrDirectedGraph   : Prim/PrimArray/Compute on a directed graph.
//   - ErrVertexNotFound  : Prim root outside [0, V).
//   - ErrUnknownMethod   : Compute with an unrecognised Method.
//   - ErrOptionViolation : negative WithRoot.
//   - ErrDisconnected    : fewer than V-1 edges under WithRequireSpanning.
//
// Performance Counters
//
//	Result.Stats.Comparisons counts the algorithm's own key comparisons
//	(see Stats), and Result.Stats.Elapsed its wall-clock time. On sparse
//	graphs the heap variant performs far fewer comparisons than the array
//	scan, which pays V per selected vertex.
//
// Weights may be negative or zero. graph.AddEdge rejects weights above
// graph.MaxWeight, keeping math.MaxInt64 free as the "not yet connected" key.
package mst
