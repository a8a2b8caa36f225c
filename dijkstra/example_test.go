// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/greedy/dijkstra"
	"github.com/katalvlaran/greedy/graph"
)

// ExampleDijkstra demonstrates computing shortest paths on a simple triangle graph.
// Complexity: O((V+E) log V) because each vertex is extracted once and each
// relaxation costs one decrease-key.
func ExampleDijkstra() {
	// 1) Create an undirected graph with three vertices.
	g, _ := graph.New(3)
	// 2) Add 0-1 (1), 1-2 (2) and 0-2 (5).
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	// 3) Compute distances from vertex 0.
	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) dist[2] is 3 via 0→1→2, not 5 via the direct edge.
	fmt.Println(res.Dist)
	// Output: [0 1 3]
}

// ExampleResult_PathTo shows path reconstruction on a directed graph.
func ExampleResult_PathTo() {
	g, _ := graph.New(4, graph.WithDirected())
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 5)

	res, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	path, _ := res.PathTo(3)
	fmt.Printf("dist=%d path=%v\n", res.Dist[3], path)
	// Output: dist=5 path=[0 1 3]
}

// ExampleWithInfEdgeThreshold demonstrates how to use InfEdgeThreshold and MaxDistance
// to impose “walls” and distance caps.
func ExampleWithInfEdgeThreshold() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(0, 2, 10)
	_ = g.AddEdge(2, 3, 1)

	// The direct edge 0-2 (weight 10 ≥ 5) is impassable; vertex 3 lies beyond the cap.
	res, _ := dijkstra.Dijkstra(g, 0,
		dijkstra.WithInfEdgeThreshold(5),
		dijkstra.WithMaxDistance(6),
	)
	fmt.Println(res.Dist[2], res.Reachable(3))
	// Output: 6 false
}
