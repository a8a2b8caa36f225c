package mst

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/greedy/graph"
)

// NoParent marks the root and vertices outside the root's component in Result.Parent.
const NoParent = -1

// ErrNilGraph indicates that a nil graph or edge list was passed.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrDirectedGraph indicates that MST algorithms require an undirected graph.
var ErrDirectedGraph = errors.New("mst: MST requires an undirected graph")

// ErrVertexNotFound indicates that the Prim root is outside [0, V).
var ErrVertexNotFound = errors.New("mst: root vertex not found in graph")

// ErrUnknownMethod indicates a Method value Compute cannot dispatch.
var ErrUnknownMethod = errors.New("mst: unknown method")

// ErrDisconnected indicates that a spanning tree covering all vertices cannot be
// formed. Returned only when WithRequireSpanning is set; otherwise the result
// is a spanning forest (Kruskal) or the root's component tree (Prim).
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrOptionViolation indicates an invalid Option value.
var ErrOptionViolation = errors.New("mst: invalid option supplied")

// Method selects the MST algorithm run by Compute.
type Method string

const (
	// MethodPrim grows the tree from a root using an indexed min-heap with decrease-key.
	MethodPrim Method = "prim"
	// MethodPrimArray grows the tree from a root with an O(V) linear scan per step.
	MethodPrimArray Method = "prim-array"
	// MethodKruskal sorts all edges and joins components with union-find.
	MethodKruskal Method = "kruskal"
)

// Options configures MST computation.
//
// Fields:
//
//	Method         : MethodPrim, MethodPrimArray or MethodKruskal (Compute only).
//	Root           : start vertex for both Prim variants; ignored by Kruskal.
//	RequireSpanning: fail with ErrDisconnected unless the result has V-1 edges.
//	OnAccept       : called for every edge as it joins the tree, in acceptance order.
//
// Complexity: O(E log V) for Prim, O(V²) for PrimArray, O(E log E + α(V)·E) for Kruskal.
type Options struct {
	Method          Method
	Root            int
	RequireSpanning bool
	OnAccept        func(e graph.Edge)

	// internal error recorded during option parsing
	err error
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options initialized for Kruskal by default:
//
//	– Method          = MethodKruskal
//	– Root            = 0
//	– RequireSpanning = false (forests are valid results)
//	– OnAccept        = no-op
func DefaultOptions() Options {
	return Options{
		Method:   MethodKruskal,
		Root:     0,
		OnAccept: func(graph.Edge) {},
	}
}

// WithMethod returns an Option that sets the algorithm Method.
// Unknown values are rejected by Compute with ErrUnknownMethod.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim.
// A negative root is recorded as ErrOptionViolation; a root ≥ V is
// reported by Prim as ErrVertexNotFound.
func WithRoot(root int) Option {
	return func(o *Options) {
		if root < 0 {
			o.err = fmt.Errorf("%w: Root cannot be negative (%d)", ErrOptionViolation, root)
			return
		}
		o.Root = root
	}
}

// WithRequireSpanning turns a spanning forest into ErrDisconnected.
func WithRequireSpanning() Option {
	return func(o *Options) {
		o.RequireSpanning = true
	}
}

// WithOnAccept registers a callback run for each accepted edge.
func WithOnAccept(fn func(e graph.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// Stats carries the per-run performance counters.
//
//	Comparisons: weight/key comparisons made by the algorithm itself: for
//	              PrimArray V per minimum scan plus one per adjacency entry;
//	              for Prim one per adjacency entry; for Kruskal one per sort
//	              comparison plus one per candidate edge.
//	Elapsed    : wall-clock duration of the run.
type Stats struct {
	Comparisons int64
	Elapsed     time.Duration
}

// Result is a minimum spanning tree or forest.
//
//   - Edges:       Prim: (Parent[v], v, key[v]) for v ascending; Kruskal: acceptance order.
//   - TotalWeight: sum of Edges' weights.
//   - Parent:      Prim only; NoParent for the root and unreached vertices. Nil for Kruskal.
//   - Stats:       performance counters.
type Result struct {
	Edges       []graph.Edge
	TotalWeight int64
	Parent      []int
	Stats       Stats
}

// Len returns the number of edges.
func (r *Result) Len() int { return len(r.Edges) }

// Spanning reports whether the result connects all n vertices.
func (r *Result) Spanning(n int) bool { return len(r.Edges) == n-1 }

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal:   Kruskal(g.EdgeList(), opts...)
//	– MethodPrim:      Prim(g, opts...)
//	– MethodPrimArray: PrimArray(g, opts...)
//	– Otherwise:       ErrUnknownMethod.
func Compute(g *graph.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	// Dispatch by method name
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g.EdgeList(), opts...)
	case MethodPrim:
		return Prim(g, opts...)
	case MethodPrimArray:
		return PrimArray(g, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// checkSpanning enforces RequireSpanning on a finished result.
func checkSpanning(cfg Options, res *Result, n int) error {
	if cfg.RequireSpanning && !res.Spanning(n) {
		return fmt.Errorf("%w: %d of %d edges", ErrDisconnected, res.Len(), n-1)
	}

	return nil
}
