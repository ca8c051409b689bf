// Package astar implements classical A* best-first search on a uniform grid.
//
// Every edge is a single move between neighboring cells with Euclidean cost
// (1 orthogonal, √2 diagonal); the heuristic is the Euclidean distance to the
// goal, which is consistent, so the first time the goal is popped its cost is
// optimal.
//
// Notes on implementation choices:
//
//   - The frontier is a lazy min-heap: a better route to a cell pushes a new
//     entry and the old one stays behind.
//   - The closed set is keyed by position. A revisited cell replaces its closed
//     entry unless the new visit is costlier.
//   - "No path" is not an error: Search reports it as ok == false.
package astar

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/search"
	"github.com/katalvlaran/gridpath/route"
)

// Search returns the lowest-cost route from start to goal on g.
//
// Returns:
//
//   - route: distance plus steps goal-first; the zero Route when start == goal.
//   - ok:    false when the frontier empties without reaching goal.
//
// Search performs no validation of g, start or goal; a start or goal that is
// blocked or off-grid simply yields no route (or a garbage one, if g lies).
//
// Complexity:
//
//   - Time:  O(N log N) for N pushed entries, N ≤ cells × d.
//   - Space: O(N).
func Search(g grid.Grid, start, goal grid.Coordinate, opts ...Option) (route.Route, bool) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if start == goal {
		return route.Route{}, true
	}

	r := &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		open:    search.NewFrontier(64),
		openG:   make(map[grid.Coordinate]float64, 64),
		closed:  search.NewClosed(64),
	}
	r.push(search.Start(start, goal))

	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       grid.Grid
	goal    grid.Coordinate
	options Options
	open    *search.Frontier
	openG   map[grid.Coordinate]float64 // best G pushed per position
	closed  *search.Closed
}

// process pops nodes until the goal surfaces or the frontier is exhausted.
func (r *runner) process() (route.Route, bool) {
	for r.open.Len() > 0 {
		current := r.open.Pop()

		if current.Position == r.goal {
			steps := search.Reconstruct(current, r.closed)
			return route.New(current.G, steps), true
		}

		r.options.OnExpand(current.Position)
		r.relax(current)

		r.closed.Replace(current)
	}

	return route.Route{}, false
}

// relax examines each neighbor of current and pushes those whose tentative
// cost is not beaten by an existing closed or open entry.
func (r *runner) relax(current search.Node) {
	for _, pos := range r.g.Neighbors(current.Position) {
		next := search.FromParent(current, pos, r.goal)

		// closed entry with a better-or-equal total cost wins
		if old, ok := r.closed.Get(pos); ok && old.F <= next.F {
			continue
		}
		// open entry with a strictly better G wins
		if g, ok := r.openG[pos]; ok && g < next.G {
			continue
		}

		r.push(next)
	}
}

func (r *runner) push(n search.Node) {
	if g, ok := r.openG[n.Position]; !ok || n.G < g {
		r.openG[n.Position] = n.G
	}
	r.open.Push(n)
	r.options.OnPush(n.Position, n.F)
}
