// Package greedy is a small, dependency-light core of priority-driven graph
// algorithms: shortest paths, minimum spanning trees and grid pathfinding,
// all built on one indexed min-heap with decrease-key.
//
// What is inside?
//
//	• Data structures: indexed min-heap (indexheap), disjoint-set forest (unionfind)
//	• Graph model:     dense 0..V-1 adjacency lists and edge lists (graph)
//	• Shortest paths:  Dijkstra with decrease-key (dijkstra)
//	• Spanning trees:  Prim (heap), Prim (array scan), Kruskal (mst)
//	• Grid search:     A* with Manhattan heuristic and lazy deletion (astar)
//	• Generators:      seeded path, cycle, star, grid, complete and random graphs (builder)
//
// Why this shape?
//
//   - Vertices are dense integers, so every per-vertex table is a slice.
//   - Each algorithm owns its scratch state for one run; nothing is shared
//     between runs and nothing is locked.
//   - Expected outcomes ("unreachable", "no path", "forest") are result
//     fields; only invalid input is an error.
//
// Layout:
//
//	indexheap/: Heap[K] over vertices 0..n-1 with position index
//	unionfind/: Find / Union with path compression and union by rank
//	graph/    : Graph (adjacency lists), EdgeList, conversions
//	dijkstra/ : single-source shortest paths, path reconstruction
//	mst/      : Prim, PrimArray, Kruskal, Compute dispatcher, Stats
//	astar/    : Map, Parse, Regions, ToGraph, Search
//	builder/  : deterministic topology factories for tests and benchmarks
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle; mst.Compute drops its heaviest edge, dijkstra.Dijkstra from 0
//	reaches 2 through the lighter side.
//
//	go get github.com/katalvlaran/greedy
package greedy
