package grid

// ConnectedComponents finds all contiguous regions of open cells
// (CellValues[y][x] ≥ PassableThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major), ascending within each component.
//
// To convert an index back to a Coordinate, use gg.Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels := gg.ComponentLabels()
	var comps [][]int
	for i, l := range labels {
		if l < 0 {
			continue
		}
		if l == len(comps) {
			comps = append(comps, nil)
		}
		comps[l] = append(comps[l], i)
	}
	return comps
}

// ComponentLabels assigns each open cell the index of its component and each
// blocked cell -1. Components are numbered in row-major order of their first cell.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (gg *GridGraph) ComponentLabels() []int {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	next := 0

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c0 := Coordinate{X: x, Y: y}
			if !gg.Traversable(c0) {
				continue // blocked
			}
			i0 := gg.Index(c0)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to label the component
			queue := []int{i0}
			labels[i0] = next

			for qi := 0; qi < len(queue); qi++ {
				u := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					v := Shift(u, d)
					if !gg.Traversable(v) {
						continue
					}
					vi := gg.Index(v)
					if labels[vi] < 0 {
						labels[vi] = next
						queue = append(queue, vi)
					}
				}
			}
			next++
		}
	}
	return labels
}

// Connected reports whether a path of open cells links a and b.
// Blocked or off-grid endpoints are never connected.
// For repeated queries compute ComponentLabels once instead.
func (gg *GridGraph) Connected(a, b Coordinate) bool {
	if !gg.Traversable(a) || !gg.Traversable(b) {
		return false
	}
	labels := gg.ComponentLabels()
	return labels[gg.Index(a)] == labels[gg.Index(b)]
}
