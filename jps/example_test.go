package jps_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/jps"
)

// ExampleSearch shows a diagonal jump followed by a horizontal one. The
// returned steps still list every cell, goal first.
func ExampleSearch() {
	g, _ := grid.FromStrings([]string{
		".....",
		".....",
		".....",
		".....",
		".....",
	}, grid.Conn8)

	r, ok := jps.Search(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 4, Y: 2})
	fmt.Println("found:", ok)
	fmt.Println(r)
	// Output:
	// found: true
	// 4.828427 [4,2 3,2 2,2 1,1 0,0]
}

// ExampleSearch_noRoute reports an enclosed goal as absent, not as an error.
func ExampleSearch_noRoute() {
	g, _ := grid.FromStrings([]string{
		".....",
		".@@@.",
		".@.@.",
		".@@@.",
		".....",
	}, grid.Conn8)

	r, ok := jps.Search(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 2, Y: 2})
	fmt.Println("found:", ok, "steps:", r.Len())
	// Output:
	// found: false steps: 0
}
