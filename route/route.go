// Package route holds the value returned by the gridpath search engines: the
// total travel distance and the ordered cells to traverse.
//
// A Route is immutable once constructed. Steps run from the goal back to the
// start (reverse travel order); every consecutive pair of a Route produced by
// astar or jps differs by at most one cell on each axis.
//
// The zero Route (distance 0, no steps) is the canonical result for a search
// whose start equals its goal.
package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Route pairs a total travel distance with the ordered steps, goal first.
type Route struct {
	distance float64
	steps    []grid.Coordinate
}

// New builds a Route; steps are copied so the caller may reuse its slice.
func New(distance float64, steps []grid.Coordinate) Route {
	cp := make([]grid.Coordinate, len(steps))
	copy(cp, steps)
	return Route{distance: distance, steps: cp}
}

// Distance returns the total travel cost.
func (r Route) Distance() float64 { return r.distance }

// Steps returns a copy of the step sequence, goal first and start last.
func (r Route) Steps() []grid.Coordinate {
	cp := make([]grid.Coordinate, len(r.steps))
	copy(cp, r.steps)
	return cp
}

// Len returns the number of steps.
func (r Route) Len() int { return len(r.steps) }

// Empty reports whether the route has no steps (start == goal).
func (r Route) Empty() bool { return len(r.steps) == 0 }

// Goal returns the first step, if any.
func (r Route) Goal() (grid.Coordinate, bool) {
	if len(r.steps) == 0 {
		return grid.Coordinate{}, false
	}
	return r.steps[0], true
}

// Start returns the last step, if any.
func (r Route) Start() (grid.Coordinate, bool) {
	if len(r.steps) == 0 {
		return grid.Coordinate{}, false
	}
	return r.steps[len(r.steps)-1], true
}

// Contiguous reports whether every consecutive pair of steps differs by at
// most one cell on each axis.
func (r Route) Contiguous() bool {
	for i := 1; i < len(r.steps); i++ {
		if !grid.Adjacent(r.steps[i-1], r.steps[i]) {
			return false
		}
	}
	return true
}

// Length sums the Euclidean lengths between consecutive steps. For a route
// returned by a search it equals Distance up to floating-point rounding.
func (r Route) Length() float64 {
	total := 0.0
	for i := 1; i < len(r.steps); i++ {
		total += grid.Distance(r.steps[i-1], r.steps[i])
	}
	return total
}

// String renders "distance [goal … start]".
func (r Route) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.6f [", r.distance)
	for i, s := range r.steps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	b.WriteByte(']')
	return b.String()
}
