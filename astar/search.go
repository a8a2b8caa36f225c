package astar

import (
	"container/heap"

	"github.com/soniakeys/bits"
)

// node is one open-set entry. The same cell may own several nodes with
// different costs; all but the cheapest become stale.
type node struct {
	cell   int // row-major index
	g      int // steps from start
	f      int // g + heuristic
	parent int // arena index of predecessor, -1 for the start node
}

// openSet is a lazy-deletion binary min-heap over arena indices, ordered by f.
// Nodes are never removed from the arena, so parent links stay valid for
// the whole run.
type openSet struct {
	nodes []node
	heap  []int
}

func (o *openSet) Len() int           { return len(o.heap) }
func (o *openSet) Less(i, j int) bool { return o.nodes[o.heap[i]].f < o.nodes[o.heap[j]].f }
func (o *openSet) Swap(i, j int)      { o.heap[i], o.heap[j] = o.heap[j], o.heap[i] }

// Push appends an arena index. Used by container/heap.
func (o *openSet) Push(x interface{}) { o.heap = append(o.heap, x.(int)) }

// Pop removes the last arena index. Used by container/heap.
func (o *openSet) Pop() interface{} {
	old := o.heap
	n := len(old)
	id := old[n-1]
	o.heap = old[:n-1]

	return id
}

// add stores n in the arena and enqueues it.
func (o *openSet) add(n node) {
	o.nodes = append(o.nodes, n)
	heap.Push(o, len(o.nodes)-1)
}

// Search runs A* from the map's start to its goal with unit step cost,
// 4-directional movement and the Manhattan heuristic.
//
// Steps:
//  1. Validate options, map and markers.
//  2. Pop the minimum-f node; if its cell is already closed, count a stale
//     pop and continue.
//  3. Close the cell; stop on the goal.
//  4. Push every passable, unclosed neighbor with g+1.
//  5. On success rebuild the path from parent links and, unless
//     WithoutMarking is set, mark intermediate cells as Path.
//
// A missing path is not an error: Result.Found is false.
// Complexity: O(W·H·log(W·H)) time, O(W·H) memory (each cell pushes at most 4 nodes).
func Search(m *Map, opts ...Option) (*Result, error) {
	// 1) Options and inputs
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if m == nil {
		return nil, ErrNilMap
	}
	start, ok := m.Start()
	if !ok {
		return nil, ErrStartNotSet
	}
	goal, ok := m.Goal()
	if !ok {
		return nil, ErrGoalNotSet
	}
	if cfg.MarkPath {
		m.ClearPath()
	}

	res := &Result{}
	goalIdx := m.Index(goal)
	closed := bits.New(m.width * m.height)
	open := &openSet{}
	open.add(node{cell: m.Index(start), g: 0, f: Manhattan(start, goal), parent: -1})

	for open.Len() > 0 {
		// 2) Lazy deletion of stale duplicates
		id := heap.Pop(open).(int)
		cur := open.nodes[id]
		if closed.Bit(cur.cell) == 1 {
			res.StalePops++
			continue
		}

		// 3) Close and test for goal
		closed.SetBit(cur.cell, 1)
		res.NodesExplored++
		p := m.Coordinate(cur.cell)
		cfg.OnExpand(p)
		if cur.cell == goalIdx {
			res.Found = true
			res.Path = open.trace(m, id)
			break
		}
		if cfg.MaxExpansions > 0 && res.NodesExplored >= cfg.MaxExpansions {
			break
		}

		// 4) Expand neighbors
		for _, d := range moves {
			q := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if !m.Passable(q) {
				continue
			}
			qi := m.Index(q)
			if closed.Bit(qi) == 1 {
				continue
			}
			g := cur.g + 1
			open.add(node{cell: qi, g: g, f: g + Manhattan(q, goal), parent: id})
		}
	}

	// 5) Report and mark
	if res.Found {
		if len(res.Path) > 2 {
			res.PathLength = len(res.Path) - 2
		}
		if cfg.MarkPath {
			for _, p := range res.Path {
				if p != start && p != goal {
					m.terrain[m.Index(p)] = Path
				}
			}
		}
	}

	return res, nil
}

// trace walks parent links from arena index id back to the start node and
// returns the points in start → id order.
func (o *openSet) trace(m *Map, id int) []Point {
	var path []Point
	for ; id != -1; id = o.nodes[id].parent {
		path = append(path, m.Coordinate(o.nodes[id].cell))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
