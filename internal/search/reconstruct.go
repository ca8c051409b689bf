package search

import "github.com/katalvlaran/gridpath/grid"

// Reconstruct walks parent links from goal back to the start sentinel and
// returns the cells goal first, start last.
//
// A link spanning more than one cell (a jump) is filled in with every
// intermediate cell, so consecutive output cells always differ by at most one
// on each axis. A* chains never need filling; JPS chains do.
//
// A parent missing from closed ends the walk early; the walk also stops after
// closed.Len() links, so a malformed chain can never loop.
func Reconstruct(goal Node, closed *Closed) []grid.Coordinate {
	steps := make([]grid.Coordinate, 0, closed.Len()+1)
	steps = append(steps, goal.Position)

	node, parent := goal.Position, goal.Parent
	for hops := 0; parent != node && hops <= closed.Len(); hops++ {
		ancestor, ok := closed.Get(parent)
		if !ok {
			break
		}

		// intermediate cells of a jump, walked from node toward its ancestor
		for next := grid.Shift(node, grid.Direction(node, parent)); next != parent; next = grid.Shift(next, grid.Direction(next, parent)) {
			steps = append(steps, next)
		}

		node, parent = ancestor.Position, ancestor.Parent
		steps = append(steps, node)
	}

	return steps
}
