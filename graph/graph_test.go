package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedy/graph"
)

func TestNew_InvalidVertexCount(t *testing.T) {
	for _, n := range []int{0, -1, -42} {
		g, err := graph.New(n)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, graph.ErrInvalidVertexCount)
	}
}

func TestAddEdge_UndirectedStoresBothEntries(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.False(t, g.Directed())

	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 7))

	assert.Equal(t, []graph.Neighbor{{To: 1, Weight: 4}, {To: 2, Weight: 7}}, g.Neighbors(0))
	assert.Equal(t, []graph.Neighbor{{To: 0, Weight: 4}}, g.Neighbors(1))
	assert.Equal(t, []graph.Neighbor{{To: 0, Weight: 7}}, g.Neighbors(2))
	assert.Equal(t, 2, g.EdgeCount(), "undirected edge is logged once")
}

func TestAddEdge_DirectedStoresOneEntry(t *testing.T) {
	g, err := graph.New(2, graph.WithDirected())
	require.NoError(t, err)
	require.True(t, g.Directed())

	require.NoError(t, g.AddEdge(0, 1, 3))
	assert.Len(t, g.Neighbors(0), 1)
	assert.Empty(t, g.Neighbors(1))
}

func TestAddEdge_OutOfRangeIsNoOp(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	cases := []struct {
		name     string
		from, to int
	}{
		{"NegativeFrom", -1, 0},
		{"NegativeTo", 0, -1},
		{"FromTooLarge", 2, 0},
		{"ToTooLarge", 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.from, tc.to, 1), graph.ErrVertexOutOfRange)
		})
	}
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(1))
}

func TestAddEdge_WeightBound(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 1, math.MaxInt64), graph.ErrWeightOutOfRange)
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Neighbors(0))

	require.NoError(t, g.AddEdge(0, 1, graph.MaxWeight))
	require.NoError(t, g.AddEdge(0, 1, math.MinInt64))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestNeighbors_PreservesInsertionOrder(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))

	got := make([]int, 0, 3)
	for _, nb := range g.Neighbors(0) {
		got = append(got, nb.To)
	}
	assert.Equal(t, []int{3, 1, 2}, got)
	assert.Nil(t, g.Neighbors(9))
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	edges := g.Edges()
	edges[0].Weight = 100
	assert.Equal(t, int64(5), g.Edges()[0].Weight)
}

func TestSelfLoop(t *testing.T) {
	g, err := graph.New(1)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 2))
	// undirected self-loop appears twice in its own list
	assert.Len(t, g.Neighbors(0), 2)
	assert.Equal(t, 1, g.EdgeCount())
}
