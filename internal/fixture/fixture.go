// Package fixture exposes the shared YAML test fixtures: weighted graphs
// with their expected shortest distances and spanning-forest weights, and
// text grids with their expected A* outcomes.
//
// The YAML files are embedded, so tests in any package can load them
// without caring about the working directory.
package fixture

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/greedy/astar"
	"github.com/katalvlaran/greedy/graph"
)

//go:embed testdata/graphs.yaml
var graphsYAML []byte

//go:embed testdata/grids.yaml
var gridsYAML []byte

// Unreachable is the distance value used in graphs.yaml for vertices the
// source cannot reach.
const Unreachable = -1

// ErrMalformed indicates a fixture entry that cannot be turned into a graph.
var ErrMalformed = errors.New("fixture: malformed entry")

// GraphCase is one entry of graphs.yaml.
type GraphCase struct {
	Name      string    `yaml:"name"`
	Vertices  int       `yaml:"vertices"`
	Directed  bool      `yaml:"directed"`
	Edges     [][]int64 `yaml:"edges"`
	Source    int       `yaml:"source"`
	Dist      []int64   `yaml:"dist"`
	MSTWeight int64     `yaml:"mst_weight"`
	MSTEdges  int       `yaml:"mst_edges"`
}

// GridCase is one entry of grids.yaml.
type GridCase struct {
	Name       string   `yaml:"name"`
	Rows       []string `yaml:"rows"`
	Found      bool     `yaml:"found"`
	PathLength int      `yaml:"path_length"`
}

// Graphs decodes every graph fixture in file order.
func Graphs() ([]GraphCase, error) {
	var doc struct {
		Graphs []GraphCase `yaml:"graphs"`
	}
	if err := yaml.Unmarshal(graphsYAML, &doc); err != nil {
		return nil, fmt.Errorf("fixture: decode graphs.yaml: %w", err)
	}

	return doc.Graphs, nil
}

// Grids decodes every grid fixture in file order.
func Grids() ([]GridCase, error) {
	var doc struct {
		Grids []GridCase `yaml:"grids"`
	}
	if err := yaml.Unmarshal(gridsYAML, &doc); err != nil {
		return nil, fmt.Errorf("fixture: decode grids.yaml: %w", err)
	}

	return doc.Grids, nil
}

// Spanning reports whether the fixture's forest is a single spanning tree.
func (c GraphCase) Spanning() bool {
	return c.MSTEdges == c.Vertices-1
}

// Graph builds the adjacency-list form of the fixture.
func (c GraphCase) Graph() (*graph.Graph, error) {
	var opts []graph.Option
	if c.Directed {
		opts = append(opts, graph.WithDirected())
	}
	g, err := graph.New(c.Vertices, opts...)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", c.Name, err)
	}
	for i, e := range c.Edges {
		if len(e) != 3 {
			return nil, fmt.Errorf("%w: %s edge %d has %d fields", ErrMalformed, c.Name, i, len(e))
		}
		if err = g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			return nil, fmt.Errorf("fixture %s: %w", c.Name, err)
		}
	}

	return g, nil
}

// EdgeList builds the edge-list form of the fixture with capacity equal to
// the number of edges.
func (c GraphCase) EdgeList() (*graph.EdgeList, error) {
	capacity := len(c.Edges)
	if capacity == 0 {
		capacity = 1
	}
	el, err := graph.NewEdgeList(c.Vertices, capacity)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", c.Name, err)
	}
	for i, e := range c.Edges {
		if len(e) != 3 {
			return nil, fmt.Errorf("%w: %s edge %d has %d fields", ErrMalformed, c.Name, i, len(e))
		}
		if err = el.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			return nil, fmt.Errorf("fixture %s: %w", c.Name, err)
		}
	}

	return el, nil
}

// Map parses the fixture rows into an astar.Map.
func (c GridCase) Map() (*astar.Map, error) {
	m, err := astar.Parse(c.Rows)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", c.Name, err)
	}

	return m, nil
}
