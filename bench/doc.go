// Package bench runs search strategies over MovingAI scenarios and checks
// the answers.
//
// For every scenario each strategy searches once; the runner then verifies:
//
//   - found: a route exists exactly when the start and goal are connected;
//   - distance: the route length equals the expected optimum at float32
//     precision (the recorded scenario length, or a Dijkstra distance when
//     the scenario records none);
//   - adjacency: consecutive steps are neighboring cells;
//   - cost and steps: all strategies agree on distance (float32) and on the
//     number of steps.
//
// Failures are collected as Mismatch records in the Report; nothing panics.
// Scenarios are spread over Runner.Workers goroutines sharing the read-only
// grid, and every search is recorded in the optional metrics.Search.
package bench
