// types.go - core types, options and sentinel errors for grid-based A* search.

package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors for map construction and search.
var (
	// ErrNilMap indicates that a nil *Map was passed to Search.
	ErrNilMap = errors.New("astar: map is nil")
	// ErrEmptyGrid indicates a map with no rows or no columns.
	ErrEmptyGrid = errors.New("astar: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("astar: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the map.
	ErrOutOfBounds = errors.New("astar: coordinate out of bounds")
	// ErrUnknownSymbol indicates an unrecognised rune in Parse input.
	ErrUnknownSymbol = errors.New("astar: unknown map symbol")
	// ErrInvalidCell indicates a Cell value outside Empty..Path.
	ErrInvalidCell = errors.New("astar: invalid cell value")
	// ErrDuplicateMarker indicates more than one start or goal in the input.
	ErrDuplicateMarker = errors.New("astar: start or goal marked more than once")
	// ErrStartNotSet indicates Search on a map without a start cell.
	ErrStartNotSet = errors.New("astar: start not set")
	// ErrGoalNotSet indicates Search on a map without a goal cell.
	ErrGoalNotSet = errors.New("astar: goal not set")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Cell is the content of one grid square.
type Cell uint8

const (
	// Empty is a passable square.
	Empty Cell = iota
	// Wall blocks movement; walls are never enqueued.
	Wall
	// Start marks the search origin.
	Start
	// Goal marks the search target.
	Goal
	// Path marks a square on the last path found. Passable.
	Path
)

// Symbols used by Parse and Map.String.
const (
	SymbolEmpty = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
	SymbolPath  = '*'
)

// Symbol returns the rune used to render c.
func (c Cell) Symbol() rune {
	switch c {
	case Wall:
		return SymbolWall
	case Start:
		return SymbolStart
	case Goal:
		return SymbolGoal
	case Path:
		return SymbolPath
	default:
		return SymbolEmpty
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Point is a grid coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// moves lists the 4-directional steps in expansion order: up, down, left, right.
var moves = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|, the admissible and consistent
// heuristic for unit-cost 4-directional movement.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Options configures Search.
//
// OnExpand      – called once per expanded (closed) cell, in expansion order.
// MarkPath      – if true (default), cells strictly between start and goal
// are set to Path on success. Earlier Path marks are cleared first.
// MaxExpansions – stop unsuccessfully after this many expansions. 0 means no limit.
type Options struct {
	OnExpand      func(p Point)
	MarkPath      bool
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns Options that mark the path, impose no expansion
// limit and observe nothing.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(Point) {},
		MarkPath: true,
	}
}

// WithOnExpand registers a callback invoked for every expanded cell.
func WithOnExpand(fn func(p Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithoutMarking leaves the map untouched by Search.
func WithoutMarking() Option {
	return func(o *Options) {
		o.MarkPath = false
	}
}

// WithMaxExpansions bounds the number of expanded cells. A value ≤ 0 is
// recorded as ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxExpansions must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result reports the outcome of Search.
//
//   - Found:         whether the goal was reached.
//   - Path:          start → goal inclusive; nil when not found.
//   - PathLength:    number of cells strictly between start and goal.
//   - NodesExplored: number of cells expanded (closed); never exceeds W·H.
//   - StalePops:     heap entries discarded because their cell was already closed.
type Result struct {
	Found         bool
	Path          []Point
	PathLength    int
	NodesExplored int
	StalePops     int
}
