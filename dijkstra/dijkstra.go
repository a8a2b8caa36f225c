// dijkstra.go - Dijkstra's shortest-path algorithm on graphs with
// non-negative edge weights.
//
// Every vertex enters an indexed min-heap up front, keyed by its tentative
// distance (+∞ except the source at 0). Each iteration extracts the closest
// in-heap vertex u and relaxes its outgoing edges; an improved neighbor is
// re-prioritised in place with decrease-key, so the heap never holds more
// than V entries and never contains stale duplicates.
//
// Complexity:
//
//   - Time:  O((V + E) log V): V extractions plus at most E decrease-keys.
//   - Space: O(V) for distances, predecessors, heap slots and positions.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - A vertex extracted at +∞ is unreachable; its edges are never relaxed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/greedy/graph"
	"github.com/katalvlaran/greedy/indexheap"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. source must be in [0, V) (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Unreachable vertices keep Dist == Unreachable. Works on both directed and
// undirected graphs; undirected edges are traversable both ways.
func Dijkstra(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d (V=%d)", ErrVertexNotFound, source, g.VertexCount())
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, source, cfg)
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph
	options Options
	source  int
	dist    []int64
	prev    []int
	heap    *indexheap.Heap[int64]
	settled int
}

// newRunner initialises dist to +∞ (source = 0) and builds the heap over
// every vertex keyed by dist.
func newRunner(g *graph.Graph, source int, cfg Options) *runner {
	n := g.VertexCount()
	dist := make([]int64, n)
	for v := range dist {
		dist[v] = Unreachable
	}
	dist[source] = 0

	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, n)
		for v := range prev {
			prev[v] = NoPredecessor
		}
	}

	return &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    dist,
		prev:    prev,
		heap:    indexheap.Build(dist),
	}
}

// process is the core loop. It terminates when the heap is empty, when the
// closest remaining vertex is unreachable, or when it lies beyond MaxDistance.
func (r *runner) process() {
	for r.heap.Len() > 0 {
		u, d, _ := r.heap.ExtractMin()

		// Everything still in the heap is at +∞ too: nothing left to settle.
		if d == Unreachable {
			return
		}
		if d > r.options.MaxDistance {
			return
		}

		r.settled++
		r.options.OnSettle(u, d)
		r.relax(u)
	}
}

// relax examines each entry of u's adjacency list and lowers the key of
// every in-heap neighbor reachable more cheaply through u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, nb := range r.g.Neighbors(u) {
		v, w := nb.To, nb.Weight

		if !r.heap.Contains(v) {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// guard du + w against overflow past Unreachable
		if w >= Unreachable-du {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// newDist < dist[v] == heap key, so DecreaseKey cannot fail here
		_ = r.heap.DecreaseKey(v, newDist)
	}
}

// result packages the run's outputs.
func (r *runner) result() *Result {
	return &Result{
		Source:  r.source,
		Dist:    r.dist,
		Prev:    r.prev,
		Settled: r.settled,
	}
}
