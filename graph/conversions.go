package graph

// EdgeList exports g as an edge list with capacity equal to its edge count
// (at least 1). Each AddEdge call contributes exactly one record, so an
// undirected edge is not duplicated.
//
// Complexity: O(E).
func (g *Graph) EdgeList() *EdgeList {
	capacity := len(g.edges)
	if capacity == 0 {
		capacity = 1
	}
	edges := make([]Edge, len(g.edges), capacity)
	copy(edges, g.edges)

	return &EdgeList{n: g.n, cap: capacity, edges: edges}
}

// Graph builds the undirected adjacency-list form of el, inserting edges in
// list order.
//
// Complexity: O(V + E).
func (el *EdgeList) Graph() *Graph {
	g := &Graph{
		n:   el.n,
		adj: make([][]Neighbor, el.n),
	}
	for _, e := range el.edges {
		// endpoints were validated by EdgeList.AddEdge
		_ = g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}
