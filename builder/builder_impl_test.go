// File: builder_impl_test.go
// Package builder_test contains functional tests for all factories in the
// builder package, verifying topology, counts, determinism and weights.
package builder_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedy/builder"
	"github.com/katalvlaran/greedy/graph"
	"github.com/katalvlaran/greedy/unionfind"
)

// connected reports whether every vertex of an undirected g lies in one set.
func connected(t *testing.T, g *graph.Graph) bool {
	t.Helper()
	uf, err := unionfind.New(g.VertexCount())
	require.NoError(t, err)
	for _, e := range g.Edges() {
		uf.Union(e.From, e.To)
	}

	return uf.Count() == 1
}

// TestBuilders_Functional runs table-driven functional tests for each factory.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		build       func() (*graph.Graph, error)
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *graph.Graph)
	}{
		{
			name:  "Path(4)",
			build: func() (*graph.Graph, error) { return builder.Path(4) },
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.Equal(t, []graph.Edge{
					{From: 0, To: 1, Weight: 1},
					{From: 1, To: 2, Weight: 1},
					{From: 2, To: 3, Weight: 1},
				}, g.Edges())
			},
		},
		{
			name:  "Cycle(5)",
			build: func() (*graph.Graph, error) { return builder.Cycle(5) },
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				last := g.Edges()[4]
				assert.Equal(t, graph.Edge{From: 4, To: 0, Weight: builder.DefaultEdgeWeight}, last)
				for v := 0; v < 5; v++ {
					assert.Len(t, g.Neighbors(v), 2, "vertex %d has degree 2", v)
				}
			},
		},
		{
			name:  "Star(6)",
			build: func() (*graph.Graph, error) { return builder.Star(6) },
			wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.Len(t, g.Neighbors(builder.CenterVertex), 5)
			},
		},
		{
			name:  "Complete(5)",
			build: func() (*graph.Graph, error) { return builder.Complete(5) },
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				for v := 0; v < 5; v++ {
					assert.Len(t, g.Neighbors(v), 4)
				}
			},
		},
		{
			name:  "Complete(1)",
			build: func() (*graph.Graph, error) { return builder.Complete(1) },
			wantV: 1, wantE: 0,
		},
		{
			name:  "CompleteDirected(4)",
			build: func() (*graph.Graph, error) { return builder.Complete(4, builder.WithDirected()) },
			wantV: 4, wantE: 12,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.Directed())
				assert.Len(t, g.Neighbors(0), 3)
			},
		},
		{
			name:  "Grid(3,4)",
			build: func() (*graph.Graph, error) { return builder.Grid(3, 4) },
			wantV: 12, wantE: 3*3 + 2*4,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.Len(t, g.Neighbors(0), 2, "corner")
				assert.Len(t, g.Neighbors(5), 4, "interior cell (1,1)")
			},
		},
		{
			name:  "Grid(1,1)",
			build: func() (*graph.Graph, error) { return builder.Grid(1, 1) },
			wantV: 1, wantE: 0,
		},
		{
			name:  "RandomSparse(p=1)",
			build: func() (*graph.Graph, error) { return builder.RandomSparse(6, 1) },
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomSparse(p=0)",
			build: func() (*graph.Graph, error) { return builder.RandomSparse(6, 0) },
			wantV: 6, wantE: 0,
		},
		{
			name: "RandomConnected(50,30)",
			build: func() (*graph.Graph, error) {
				return builder.RandomConnected(50, 30, builder.WithSeed(7))
			},
			wantV: 50, wantE: 79,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.True(t, connected(t, g))
				for _, e := range g.Edges() {
					assert.NotEqual(t, e.From, e.To, "no self-loops")
				}
			},
		},
		{
			name:  "RandomConnected(1,0)",
			build: func() (*graph.Graph, error) { return builder.RandomConnected(1, 0) },
			wantV: 1, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := tc.build()
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors verifies sentinel errors and their priority.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() (*graph.Graph, error)
		want  error
	}{
		{"PathTooShort", func() (*graph.Graph, error) { return builder.Path(1) }, builder.ErrTooFewVertices},
		{"CycleTooShort", func() (*graph.Graph, error) { return builder.Cycle(2) }, builder.ErrTooFewVertices},
		{"StarTooShort", func() (*graph.Graph, error) { return builder.Star(1) }, builder.ErrTooFewVertices},
		{"CompleteZero", func() (*graph.Graph, error) { return builder.Complete(0) }, builder.ErrTooFewVertices},
		{"GridZeroRows", func() (*graph.Graph, error) { return builder.Grid(0, 3) }, builder.ErrTooFewVertices},
		{"SparseBadP", func() (*graph.Graph, error) { return builder.RandomSparse(3, 1.5) }, builder.ErrInvalidProbability},
		{"SparseNegativeP", func() (*graph.Graph, error) { return builder.RandomSparse(3, -0.1) }, builder.ErrInvalidProbability},
		{"SparseNeedsRNG", func() (*graph.Graph, error) { return builder.RandomSparse(3, 0.5) }, builder.ErrNeedRandSource},
		{"SizeBeforeProbability", func() (*graph.Graph, error) { return builder.RandomSparse(0, 2) }, builder.ErrTooFewVertices},
		{"ConnectedNeedsRNG", func() (*graph.Graph, error) { return builder.RandomConnected(5, 0) }, builder.ErrNeedRandSource},
		{"ConnectedNegativeExtra", func() (*graph.Graph, error) {
			return builder.RandomConnected(5, -1, builder.WithSeed(1))
		}, builder.ErrTooFewVertices},
		{"ConnectedExtraOnSingleton", func() (*graph.Graph, error) {
			return builder.RandomConnected(1, 2, builder.WithSeed(1))
		}, builder.ErrTooFewVertices},
		{"NilRand", func() (*graph.Graph, error) { return builder.Path(3, builder.WithRand(nil)) }, builder.ErrOptionViolation},
		{"NilWeightFn", func() (*graph.Graph, error) { return builder.Path(3, builder.WithWeightFn(nil)) }, builder.ErrOptionViolation},
		{"NegativeConstant", func() (*graph.Graph, error) { return builder.Path(3, builder.WithConstantWeight(-1)) }, builder.ErrOptionViolation},
		{"EmptyUniformRange", func() (*graph.Graph, error) { return builder.Path(3, builder.WithUniformWeight(5, 4)) }, builder.ErrOptionViolation},
		{"OptionBeforeSize", func() (*graph.Graph, error) { return builder.Path(0, builder.WithRand(nil)) }, builder.ErrOptionViolation},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := tc.build()
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuilders_Deterministic checks that equal seeds give identical graphs.
func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *graph.Graph {
		g, err := builder.RandomSparse(40, 0.2, builder.WithSeed(seed), builder.WithUniformWeight(1, 50))
		require.NoError(t, err)
		return g
	}
	assert.Equal(t, build(11).Edges(), build(11).Edges())
	assert.NotEqual(t, build(11).Edges(), build(12).Edges())
}

// TestWithDistinctWeights verifies that weights form the set 1..E.
func TestWithDistinctWeights(t *testing.T) {
	t.Parallel()

	for _, opts := range [][]builder.Option{
		{builder.WithDistinctWeights()},
		{builder.WithDistinctWeights(), builder.WithSeed(3)},
	} {
		g, err := builder.Complete(7, opts...)
		require.NoError(t, err)

		weights := make([]int, 0, g.EdgeCount())
		for _, e := range g.Edges() {
			weights = append(weights, int(e.Weight))
		}
		sort.Ints(weights)
		for i, w := range weights {
			assert.Equal(t, i+1, w)
		}
	}
}

// TestWithDistinctWeights_OverriddenByLaterWeightOption checks last-wins semantics.
func TestWithDistinctWeights_OverriddenByLaterWeightOption(t *testing.T) {
	t.Parallel()

	g, err := builder.Path(4, builder.WithDistinctWeights(), builder.WithConstantWeight(9))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(9), e.Weight)
	}
}
