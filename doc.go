// Package gridpath finds shortest routes on uniform 2D grids.
//
// Two interchangeable engines answer the same question and return routes of
// equal distance on the same map:
//
//	astar         classical A* over single-cell moves
//	jps           Jump Point Search, scanning straight and diagonal runs and
//	              stopping only where a forced neighbor appears
//
// Around them:
//
//	grid          Coordinate, the Grid capability and the GridGraph implementation
//	route         the Route value both engines return (distance + steps, goal first)
//	dijkstra      exhaustive distance field, the reference for both engines
//	movingai      .map and .scen readers for the MovingAI benchmark sets
//	bench         runs strategies over scenarios and verifies the answers
//	cmd/gridpath  command-line front end (find, bench)
//
// Moves cost their Euclidean length: 1 orthogonal, √2 diagonal. The heuristic
// is the Euclidean distance to the goal. "No route" is never an error: both
// engines return ok == false.
//
// Quick ASCII example:
//
//	S . . . .
//	. . . . .      S = 0,0   G = 4,2
//	. . . . G      distance 2 + 2√2, steps G 3,2 2,2 1,1 S
//
//	go get github.com/katalvlaran/gridpath
package gridpath
