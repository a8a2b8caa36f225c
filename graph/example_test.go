package graph_test

import (
	"fmt"

	"github.com/katalvlaran/greedy/graph"
)

// ExampleGraph builds a small undirected triangle and walks vertex 0's
// adjacency list in insertion order.
func ExampleGraph() {
	g, err := graph.New(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	for _, nb := range g.Neighbors(0) {
		fmt.Printf("0-%d (w=%d)\n", nb.To, nb.Weight)
	}
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// 0-1 (w=4)
	// 0-2 (w=5)
	// edges: 3
}

// ExampleEdgeList shows the capacity ceiling of the edge-list form.
func ExampleEdgeList() {
	el, _ := graph.NewEdgeList(3, 1)
	fmt.Println(el.AddEdge(0, 1, 1))
	fmt.Println(el.AddEdge(1, 2, 1))

	// Output:
	// <nil>
	// graph: edge capacity exceeded: capacity 1
}
