// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm on uniform grids.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from a single source cell to all
//     reachable cells in O((V + E) log V) time, where V = open cells and E = moves.
//   - Move costs are Euclidean: 1 orthogonal, √2 diagonal, exactly as in the
//     astar and jps engines.
//   - It relies on a min-heap (priority queue) to always settle the next-closest cell.
//
// When to use:
//
//   - As the ground truth when checking astar or jps distances: it has no
//     heuristic and no pruning, so it cannot miss a cheaper route.
//   - For one-to-many queries (distance fields) where a goal-directed search
//     would repeat work.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map; PathTo rebuilds a route from it.
//   - MaxDistance: aborts exploration beyond a specified distance.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil grid.
//   - ErrSourceBlocked:
//     Returned if the source cell is blocked or outside the grid.
//   - ErrBadMaxDistance:
//     Raised (via panic) if you set MaxDistance to a negative value.
//   - ErrNoPath:
//     Returned by PathTo when the target was never reached.
//
// API reference:
//
//	func Dijkstra(
//	    g grid.Grid,
//	    opts ...Option,
//	) (dist map[grid.Coordinate]float64, prev map[grid.Coordinate]grid.Coordinate, err error)
//
//	func PathTo(prev map[grid.Coordinate]grid.Coordinate, source, target grid.Coordinate) ([]grid.Coordinate, error)
package dijkstra
