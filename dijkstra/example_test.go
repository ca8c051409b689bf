// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleDijkstra demonstrates a distance field around a single obstacle.
// The blocked center forces the corner-to-corner route to bend around it:
// one straight move, one diagonal, one straight move (2 + √2).
func ExampleDijkstra() {
	g, _ := grid.FromStrings([]string{
		"...",
		".@.",
		"...",
	}, grid.Conn8)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Coordinate{X: 0, Y: 0}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("to 2,0: %.3f\n", dist[grid.Coordinate{X: 2, Y: 0}])
	fmt.Printf("to 2,2: %.3f\n", dist[grid.Coordinate{X: 2, Y: 2}])
	_, reached := dist[grid.Coordinate{X: 1, Y: 1}]
	fmt.Println("center reached:", reached)
	// Output:
	// to 2,0: 2.000
	// to 2,2: 3.414
	// center reached: false
}

// ExamplePathTo shows how to rebuild a route from the predecessor map.
func ExamplePathTo() {
	g, _ := grid.FromStrings([]string{
		"...",
		".@.",
		"...",
	}, grid.Conn8)

	src, dst := grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 2, Y: 2}
	_, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())

	path, err := dijkstra.PathTo(prev, src, dst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", len(path))
	fmt.Println("first:", path[0], "last:", path[len(path)-1])
	// Output:
	// cells: 4
	// first: 2,2 last: 0,0
}
