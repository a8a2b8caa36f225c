// types.go - result types, configuration options and sentinel errors for
// the single-source shortest-path engine.
//
// Options:
//
//	– ReturnPath:       record predecessors so PathTo can rebuild paths.
//	– MaxDistance:      stop once the closest remaining vertex is farther than this.
//	– InfEdgeThreshold: edges with weight ≥ this threshold are impassable.
//	– OnSettle:         callback invoked when a vertex's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source index is outside [0, V).
//	– ErrNegativeWeight  if any edge weight is negative.
//	– ErrOptionViolation if an option received a meaningless value.
//	– ErrNoPath          from PathTo when the target is unreachable.
//	– ErrPathNotTracked  from PathTo when ReturnPath was not enabled.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable vertices in Result.Prev.
const NoPredecessor = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is out of range.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that the requested target is unreachable.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrPathNotTracked indicates PathTo on a result computed without WithReturnPath.
	ErrPathNotTracked = errors.New("dijkstra: predecessors were not recorded")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, Result.Prev is populated; otherwise it is nil.
// MaxDistance      – cap on explored distance. Must be ≥ 0. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ this are skipped. Must be > 0. Default math.MaxInt64.
// OnSettle         – called once per finalised vertex with its distance.
type Options struct {
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	OnSettle         func(v int, dist int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no path recording, no distance cap,
// no impassable edges and a no-op OnSettle hook.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		OnSettle:         func(int, int64) {},
	}
}

// WithReturnPath enables predecessor recording in Result.Prev.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops exploration once the closest in-heap vertex is
// farther than max. Vertices beyond max are reported as Unreachable.
// A negative value is recorded as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as
// impassable. A value ≤ 0 is recorded as ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers a callback run when a vertex's distance becomes final.
func WithOnSettle(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result holds the outcome of a single-source run.
//
//   - Dist[v]:  minimum distance from Source to v, or Unreachable.
//   - Prev[v]:  predecessor of v on one shortest path, NoPredecessor for the
//     source and unreachable vertices. Nil unless WithReturnPath was set.
//   - Settled:  number of vertices whose distance was finalised.
type Result struct {
	Source  int
	Dist    []int64
	Prev    []int
	Settled int
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// PathTo reconstructs the vertex sequence Source → … → target.
// Returns ErrPathNotTracked when predecessors were not recorded and
// ErrNoPath when target is unreachable or out of range.
func (r *Result) PathTo(target int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrPathNotTracked
	}
	if !r.Reachable(target) {
		return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, target)
	}

	// build reversed path
	path := []int{}
	for cur := target; cur != NoPredecessor; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
