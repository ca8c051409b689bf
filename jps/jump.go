package jps

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/search"
)

// jump scans from origin in direction dir and returns the jump points found,
// or nil when the scan runs into a blocked cell first.
//
// Diagonal directions recurse once into a horizontal and a vertical scan, so
// the recursion depth never exceeds two. Every straight scan ends at the goal,
// a forced neighbor, or a blocked cell (off-grid cells count as blocked).
func (r *runner) jump(origin search.Node, dir grid.Coordinate) []search.Node {
	var nodes []search.Node
	current := origin
	for {
		if current.Position == r.goal {
			return append(nodes, current)
		}
		if !r.g.Traversable(current.Position) {
			return nil
		}

		switch {
		case dir.X != 0 && dir.Y != 0:
			// horizontal results first, then vertical
			nodes = append(nodes, r.jump(current, grid.Coordinate{X: dir.X})...)
			nodes = append(nodes, r.jump(current, grid.Coordinate{Y: dir.Y})...)
		case dir.X != 0:
			nodes = r.forcedHorizontal(nodes, current, dir.X)
		default:
			nodes = r.forcedVertical(nodes, current, dir.Y)
		}

		next := grid.Shift(current.Position, dir)
		if len(nodes) > 0 {
			// current becomes a jump point; next keeps the scan going later
			return append(nodes, current, search.FromParent(current, next, r.goal))
		}

		current = search.FromParent(origin, next, r.goal)
	}
}

// forcedHorizontal appends the forced neighbors of current when travelling
// along x by dx: a blocked cell above (below) with an open cell diagonally
// ahead of it.
func (r *runner) forcedHorizontal(nodes []search.Node, current search.Node, dx int) []search.Node {
	p := current.Position
	for _, dy := range [2]int{-1, 1} {
		side := grid.Coordinate{X: p.X, Y: p.Y + dy}
		ahead := grid.Coordinate{X: p.X + dx, Y: p.Y + dy}
		if !r.g.Traversable(side) && r.g.Traversable(ahead) {
			nodes = append(nodes, search.FromParent(current, ahead, r.goal))
		}
	}
	return nodes
}

// forcedVertical is forcedHorizontal with the axes swapped: left, then right.
func (r *runner) forcedVertical(nodes []search.Node, current search.Node, dy int) []search.Node {
	p := current.Position
	for _, dx := range [2]int{-1, 1} {
		side := grid.Coordinate{X: p.X + dx, Y: p.Y}
		ahead := grid.Coordinate{X: p.X + dx, Y: p.Y + dy}
		if !r.g.Traversable(side) && r.g.Traversable(ahead) {
			nodes = append(nodes, search.FromParent(current, ahead, r.goal))
		}
	}
	return nodes
}
