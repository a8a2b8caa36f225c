// Package astar finds shortest 4-directional paths on a rectangular grid
// with A* search.
//
// What:
//
//   - Map wraps a W×H grid of cells (Empty, Wall, Path) plus start and goal
//     markers. Build it with NewMap, FromCells or Parse.
//   - Search expands cells in order of f = g + h, where g counts unit steps
//     from the start and h is the Manhattan distance to the goal.
//   - The open set is a lazy-deletion binary heap: a cell may be pushed
//     several times with different costs, and entries whose cell is
//     already closed are discarded when popped. There is no decrease-key.
//   - Open-set nodes live in an index-addressed arena; predecessor links
//     are arena indices, so path reconstruction never chases pointers.
//   - ToGraph exports the passable cells as a unit-weight *graph.Graph, so
//     any graph algorithm (dijkstra in particular) can run on the same map.
//
// Why:
//
//   - Manhattan distance never overestimates the remaining cost with
//     4-directional unit moves and is consistent, so the first time the goal
//     is closed its path is optimal.
//
// Complexity:
//
//   - Search:  O(W·H·log(W·H)) time, O(W·H) memory.
//   - Regions: O(W·H) time and memory.
//   - ToGraph: O(W·H) time and memory.
//
// Options:
//
//   - WithOnExpand:      observe each expanded cell.
//   - WithoutMarking:    leave the map untouched.
//   - WithMaxExpansions: give up after a number of expansions.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol, ErrDuplicateMarker: construction.
//   - ErrOutOfBounds: marker or cell outside the map.
//   - ErrNilMap, ErrStartNotSet, ErrGoalNotSet, ErrOptionViolation: Search.
//
// An unreachable goal is reported through Result.Found, not an error.
package astar
