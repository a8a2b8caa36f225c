package astar

// Regions finds all 4-connected regions of passable cells.
// Returns a slice of regions; each region is a slice of row-major cell
// indices in BFS order, regions ordered by their first cell.
//
// To convert an index back to a Point, use Coordinate.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (m *Map) Regions() [][]int {
	seen := make([]bool, len(m.terrain))
	var regions [][]int

	for i0, c := range m.terrain {
		if c == Wall || seen[i0] {
			continue
		}
		seen[i0] = true
		region := m.flood(i0, seen)
		regions = append(regions, region)
	}

	return regions
}

// Connected reports whether a and b are both passable and lie in the same
// region, i.e. whether Search between them can succeed.
func (m *Map) Connected(a, b Point) bool {
	if !m.Passable(a) || !m.Passable(b) {
		return false
	}
	seen := make([]bool, len(m.terrain))
	seen[m.Index(a)] = true
	target := m.Index(b)
	for _, idx := range m.flood(m.Index(a), seen) {
		if idx == target {
			return true
		}
	}

	return false
}

// flood collects the region around i0 by BFS. seen[i0] must already be set.
func (m *Map) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := m.Coordinate(queue[qi])
		for _, d := range moves {
			v := Point{X: u.X + d.X, Y: u.Y + d.Y}
			if !m.Passable(v) {
				continue
			}
			vi := m.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
