package jps

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/search"
	"github.com/katalvlaran/gridpath/route"
)

// Search returns the lowest-cost route from start to goal on g using Jump
// Point Search. ok is false when goal is unreachable.
//
// The result has the same distance as astar.Search on the same grid; the
// steps may differ between equally short routes.
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
		open:    search.NewFrontier(16),
		closed:  search.NewClosed(64),
	}
	r.seed(start)

	return r.process()
}

// runner holds the mutable state for a single JPS execution.
type runner struct {
	g       grid.Grid
	goal    grid.Coordinate
	options Options
	open    *search.Frontier
	closed  *search.Closed
}

// seed closes the start node and pushes each of its neighbors so every
// first jump carries a travel direction.
func (r *runner) seed(start grid.Coordinate) {
	s := search.Start(start, r.goal)
	for _, pos := range r.g.Neighbors(start) {
		r.push(search.FromParent(s, pos, r.goal))
	}
	r.closed.Keep(s)
}

func (r *runner) process() (route.Route, bool) {
	for r.open.Len() > 0 {
		current := r.open.Pop()

		if current.Position == r.goal {
			// jump points still waiting in the frontier may be ancestors of the goal
			for _, n := range r.open.Drain() {
				r.closed.Keep(n)
			}
			steps := search.Reconstruct(current, r.closed)
			return route.New(current.G, steps), true
		}

		if r.closed.Has(current.Position) {
			r.closed.Keep(current)
			continue
		}

		r.options.OnExpand(current.Position)
		if dir := grid.Direction(current.Parent, current.Position); dir != (grid.Coordinate{}) {
			for _, n := range r.jump(current, dir) {
				r.push(n)
			}
		}

		r.closed.Keep(current)
	}

	return route.Route{}, false
}

func (r *runner) push(n search.Node) {
	r.open.Push(n)
	r.options.OnPush(n.Position, n.F)
}
