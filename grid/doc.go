// Package grid models a uniform 2D grid of cells as the traversal capability
// consumed by the search engines of gridpath.
//
// What:
//
//   - Coordinate is a structural (x, y) cell address, usable as a map key.
//   - Grid is the capability interface: Traversable and Neighbors.
//   - GridGraph is the stock implementation over a rectangular [][]int with a
//     tunable PassableThreshold and Conn4/Conn8 connectivity.
//   - Distance, Direction and Shift are the shared geometry helpers.
//   - ConnectedComponents / Connected answer reachability without searching.
//
// Why:
//
//   - Engines depend only on Grid, so any map source (MovingAI files, ASCII art,
//     procedurally generated levels) can be plugged in.
//   - Euclidean distance is used both as edge cost and as heuristic, which keeps
//     the heuristic consistent on 8-connected grids.
//
// Complexity:
//
//   - Traversable, InBounds:   O(1).
//   - Neighbors:               O(d), d = 4 or 8.
//   - ConnectedComponents:     O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.PassableThreshold: minimum cell value considered open.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, corner cutting allowed).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTerrain: an ASCII row contains an unsupported terrain rune.
//
// Thread safety:
//
//   - GridGraph is immutable once built; concurrent reads are safe.
package grid
