package graph

import (
	"errors"
	"math"
)

// MaxWeight is the largest accepted edge weight. math.MaxInt64 is reserved
// as the "not reached" key of the shortest-path and spanning-tree searches.
const MaxWeight int64 = math.MaxInt64 - 1

// Sentinel errors for graph construction.
var (
	// ErrInvalidVertexCount indicates a non-positive vertex count.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be positive")

	// ErrInvalidCapacity indicates a non-positive edge-list capacity.
	ErrInvalidCapacity = errors.New("graph: edge capacity must be positive")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrCapacityExceeded indicates that an EdgeList is already full.
	ErrCapacityExceeded = errors.New("graph: edge capacity exceeded")

	// ErrWeightOutOfRange indicates an edge weight above MaxWeight.
	ErrWeightOutOfRange = errors.New("graph: edge weight out of range")
)

// Neighbor is one adjacency entry: the vertex reached and the edge weight.
type Neighbor struct {
	To     int
	Weight int64
}

// Edge is a weighted connection between two vertices. For undirected graphs
// From/To carry the orientation in which the edge was added.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Option configures a Graph at construction time.
type Option func(*Options)

// Options holds Graph construction flags.
type Options struct {
	// Directed stores each AddEdge as a single from→to entry.
	Directed bool
}

// DefaultOptions returns undirected construction flags.
func DefaultOptions() Options {
	return Options{Directed: false}
}

// WithDirected makes AddEdge insert only the from→to entry.
func WithDirected() Option {
	return func(o *Options) {
		o.Directed = true
	}
}
