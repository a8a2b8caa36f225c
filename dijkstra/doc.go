// Package dijkstra computes single-source shortest paths on a *graph.Graph
// with non-negative int64 edge weights.
//
// Overview:
//
//   - Dijkstra settles vertices in order of increasing distance from the
//     source. The frontier is an indexheap.Heap holding every unsettled
//     vertex exactly once; relaxing an edge lowers the neighbor's key in place
//     (decrease-key) instead of pushing a duplicate entry.
//   - Vertices are dense indices 0..V-1, so distances and predecessors are
//     plain slices rather than maps.
//
// When to use:
//
//   - Exact shortest distances on a static graph with non-negative weights.
//   - As a reference oracle for heuristic searches such as astar.Search on
//     a grid converted with astar.Map.ToGraph.
//
// Key features:
//
//   - WithReturnPath:       records predecessors; Result.PathTo rebuilds a path.
//   - WithMaxDistance:      stops once the frontier is farther than a cap.
//   - WithInfEdgeThreshold: edges at or above a weight are impassable.
//   - WithOnSettle:         observes each vertex as its distance becomes final.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V). Each vertex is extracted once; each edge
//     relaxation performs at most one O(log V) decrease-key.
//   - Space: O(V). The heap never exceeds V slots.
//
// Error handling (sentinel errors):
//
//   - ErrOptionViolation: an option received a meaningless value. Checked first.
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrVertexNotFound:  the source index is outside [0, V).
//   - ErrNegativeWeight:  an edge carries a negative weight (O(E) pre-scan).
//   - ErrNoPath, ErrPathNotTracked: returned by Result.PathTo.
//
// API reference:
//
//	func Dijkstra(g *graph.Graph, source int, opts ...Option) (*Result, error)
//
//	  - Result.Dist[v]: minimal distance or Unreachable (math.MaxInt64).
//	  - Result.Prev[v]: predecessor or NoPredecessor; nil without WithReturnPath.
//	  - Result.Settled: number of vertices whose distance was finalised.
//
// Thread safety:
//
//   - A run owns its Result; the graph is only read. Concurrent runs over the
//     same graph are safe as long as nobody mutates the graph meanwhile.
//
// See also:
//
//   - indexheap: the decrease-key priority queue backing the frontier.
//   - mst.Prim: the same heap discipline keyed by edge weight instead of distance.
package dijkstra
