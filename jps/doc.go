// Package jps implements Jump Point Search on a uniform 8-connected grid.
//
// Overview:
//
//   - JPS is best-first search over jump points only: cells where the travel
//     direction may have to change (a forced neighbor appears) and the goal.
//     Straight and diagonal runs of cells between jump points are skipped.
//   - Costs and heuristic are Euclidean, exactly as in package astar, so both
//     engines return routes of equal distance on the same map.
//   - The returned Route is expanded back into unit steps: every jump is filled
//     in with the cells it crossed.
//
// Grid requirements:
//
//   - 8-connectivity with corner cutting (grid.Conn8). Diagonal scans only
//     require the diagonal cell to be open.
//   - Traversable must answer false for cells one step outside the grid; the
//     scan probes them while looking for forced neighbors.
//
// Search outline:
//
//  1. start == goal → zero Route.
//  2. Seed the frontier with every neighbor of start (each carries its own
//     travel direction); the start node goes straight to the closed set.
//  3. Pop the lowest-F node. Goal → move the frontier into the closed set and
//     rebuild the route. Already closed → skip.
//  4. Scan from the node in the direction it was reached from its parent and
//     push every jump point found.
//  5. Frontier exhausted → no route.
//
// Jump scan:
//
//   - Horizontal (dx): stop at the goal or a blocked cell; a forced neighbor
//     exists when (x, y∓1) is blocked and (x+dx, y∓1) is open.
//   - Vertical (dy): the same with axes swapped.
//   - Diagonal (dx,dy): at each cell run a horizontal then a vertical sub-scan;
//     any result makes the cell a jump point.
//   - When something is found the scan emits the found nodes, the current cell
//     and the next cell in the travel direction, then stops.
//
// Complexity:
//
//   - Time:  worst case O(W×H×(W+H)) scan work, typically far below A*'s expansions.
//   - Space: O(J) for J jump points pushed.
//
// Thread safety:
//
//   - Search keeps all state local to the call; concurrent calls on a shared,
//     read-only grid are safe.
package jps
