// grid.go - the rectangular cell map searched by A*.
//
// The map stores terrain (Empty, Wall, Path) per cell in a row-major slice.
// Start and goal are markers kept beside the terrain, so a map can have
// start == goal; Cell reports them as Start and Goal.

package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/greedy/graph"
)

// Map is a mutable W×H grid with optional start and goal markers.
// The zero value is not usable; construct with NewMap, FromCells or Parse.
type Map struct {
	width, height int
	terrain       []Cell // row-major: index = y*width + x
	start, goal   Point
	hasStart      bool
	hasGoal       bool
}

// NewMap returns a width×height map of Empty cells without markers.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, width, height)
	}

	return &Map{
		width:   width,
		height:  height,
		terrain: make([]Cell, width*height),
	}, nil
}

// FromCells builds a map from rows of cells, cells[y][x]. The input is
// copied. Start and Goal entries set the markers.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, ErrDuplicateMarker if
// Start or Goal appears more than once and ErrInvalidCell for a value
// above Path.
func FromCells(cells [][]Cell) (*Map, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	m, err := NewMap(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range cells {
		for x, c := range row {
			if err = m.place(Point{X: x, Y: y}, c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Parse builds a map from text rows using the Symbol* runes:
// '.' empty, '#' wall, 'S' start, 'G' goal, '*' path.
// Returns the FromCells errors plus ErrUnknownSymbol.
func Parse(rows []string) (*Map, error) {
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]Cell, 0, len(row))
		for x, r := range row {
			var c Cell
			switch r {
			case SymbolEmpty:
				c = Empty
			case SymbolWall:
				c = Wall
			case SymbolStart:
				c = Start
			case SymbolGoal:
				c = Goal
			case SymbolPath:
				c = Path
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, r, x, y)
			}
			cells[y] = append(cells[y], c)
		}
	}

	return FromCells(cells)
}

// place writes c at p during construction, rejecting a second marker.
func (m *Map) place(p Point, c Cell) error {
	switch {
	case c == Start && m.hasStart, c == Goal && m.hasGoal:
		return fmt.Errorf("%w: %s at %s", ErrDuplicateMarker, c, p)
	}

	return m.SetCell(p, c)
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Index maps p to its row-major index y*Width + x. p must be in bounds.
func (m *Map) Index(p Point) int {
	return p.Y*m.width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (m *Map) Coordinate(idx int) Point {
	return Point{X: idx % m.width, Y: idx / m.width}
}

// Cell returns the content at p. Markers win over terrain; the start
// wins when start == goal. Out-of-bounds points read as Wall.
func (m *Map) Cell(p Point) Cell {
	switch {
	case !m.InBounds(p):
		return Wall
	case m.hasStart && m.start == p:
		return Start
	case m.hasGoal && m.goal == p:
		return Goal
	default:
		return m.terrain[m.Index(p)]
	}
}

// Passable reports whether p is in bounds and not a wall.
func (m *Map) Passable(p Point) bool {
	return m.InBounds(p) && m.terrain[m.Index(p)] != Wall
}

// SetCell writes c at p. Start and Goal move the corresponding marker.
// Any other value replaces the terrain and removes a marker sitting at p.
// Returns ErrInvalidCell for a value above Path and ErrOutOfBounds if p is
// outside the map; the map is unchanged in both cases.
func (m *Map) SetCell(p Point, c Cell) error {
	switch {
	case c == Start:
		return m.SetStart(p)
	case c == Goal:
		return m.SetGoal(p)
	case c > Path:
		return fmt.Errorf("%w: %d at %s", ErrInvalidCell, uint8(c), p)
	}
	if !m.InBounds(p) {
		return fmt.Errorf("%w: %s in %d×%d map", ErrOutOfBounds, p, m.width, m.height)
	}

	if m.hasStart && m.start == p {
		m.hasStart = false
	}
	if m.hasGoal && m.goal == p {
		m.hasGoal = false
	}
	m.terrain[m.Index(p)] = c

	return nil
}

// SetStart moves the start marker to p and clears the terrain under it.
// Returns ErrOutOfBounds if p is outside the map.
func (m *Map) SetStart(p Point) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: start %s in %d×%d map", ErrOutOfBounds, p, m.width, m.height)
	}
	m.terrain[m.Index(p)] = Empty
	m.start, m.hasStart = p, true

	return nil
}

// SetGoal moves the goal marker to p and clears the terrain under it.
// Returns ErrOutOfBounds if p is outside the map.
func (m *Map) SetGoal(p Point) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: goal %s in %d×%d map", ErrOutOfBounds, p, m.width, m.height)
	}
	m.terrain[m.Index(p)] = Empty
	m.goal, m.hasGoal = p, true

	return nil
}

// Start returns the start marker and whether it is set.
func (m *Map) Start() (Point, bool) { return m.start, m.hasStart }

// Goal returns the goal marker and whether it is set.
func (m *Map) Goal() (Point, bool) { return m.goal, m.hasGoal }

// ClearPath resets every Path cell to Empty.
func (m *Map) ClearPath() {
	for i, c := range m.terrain {
		if c == Path {
			m.terrain[i] = Empty
		}
	}
}

// String renders the map one row per line using the Symbol* runes.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			sb.WriteRune(m.Cell(Point{X: x, Y: y}).Symbol())
		}
	}

	return sb.String()
}

// ToGraph converts the map into an undirected *graph.Graph with one vertex
// per cell (vertex = Index) and a unit-weight edge between every pair of
// orthogonally adjacent passable cells. Walls become isolated vertices.
// Complexity: O(W×H) time and memory.
func (m *Map) ToGraph() (*graph.Graph, error) {
	g, err := graph.New(m.width * m.height)
	if err != nil {
		return nil, err
	}
	// Only right and down neighbors, so each pair is added once.
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := Point{X: x, Y: y}
			if !m.Passable(p) {
				continue
			}
			for _, q := range [2]Point{{X: x + 1, Y: y}, {X: x, Y: y + 1}} {
				if !m.Passable(q) {
					continue
				}
				if err = g.AddEdge(m.Index(p), m.Index(q), 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
