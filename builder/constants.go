// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// constants.go - shared defaults and limits for the topology factories.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the factory name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle factory.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path factory.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star factory.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete factory.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid factory.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse factory.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomConnected is the canonical name for the RandomConnected factory.
	MethodRandomConnected = "RandomConnected"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
// A star requires one center plus at least one leaf (2 nodes total).
const MinStarNodes = 2

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomVertices is the smallest vertex count for the random factories
// and for Complete.
const MinRandomVertices = 1

// CenterVertex is the hub of Star.
const CenterVertex = 0

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// MinProbability is the lower bound for the probability parameter p in
// RandomSparse (Erdős–Rényi) graph construction, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the probability parameter p in
// RandomSparse construction, inclusive.
const MaxProbability = 1.0
