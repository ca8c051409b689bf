// Package dijkstra implements Dijkstra's shortest-path algorithm on grids.
//
// It processes cells in order of increasing distance using a min-heap,
// relaxing moves to neighbors and updating distances accordingly. Unlike the
// astar and jps engines it has no goal and no heuristic: it settles every
// reachable cell, which makes it the reference oracle for their costs.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = open cells, E = V × d moves.
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Notes on implementation choices:
//
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Dijkstra computes shortest distances from the source cell (Options.Source)
// to all reachable cells of g.
//
// Returns:
//
//   - dist: map from cell to minimum distance; unreachable cells are absent.
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest route to v arrives from u.
//   - err:  ErrNilGrid or ErrSourceBlocked.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g grid.Grid, opts ...Option) (map[grid.Coordinate]float64, map[grid.Coordinate]grid.Coordinate, error) {
	// 1) Build Options.
	cfg := DefaultOptions(grid.Coordinate{})
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.Traversable(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSourceBlocked, cfg.Source)
	}

	// 3) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[grid.Coordinate]float64),
		prev:    make(map[grid.Coordinate]grid.Coordinate),
		visited: make(map[grid.Coordinate]bool),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// PathTo rebuilds the route to target from a predecessor map returned with
// WithReturnPath. The result runs target first, source last, matching
// route.Route step order. source == target yields an empty slice.
func PathTo(prev map[grid.Coordinate]grid.Coordinate, source, target grid.Coordinate) ([]grid.Coordinate, error) {
	if source == target {
		return []grid.Coordinate{}, nil
	}
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, target)
	}
	path := []grid.Coordinate{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: broken chain at %s", ErrNoPath, cur)
		}
		path = append(path, p)
		cur = p
	}
	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       grid.Grid                           // The input grid; read-only.
	options Options                             // Configuration options.
	dist    map[grid.Coordinate]float64         // Cell → current best distance from Source.
	prev    map[grid.Coordinate]grid.Coordinate // Cell → predecessor on the shortest route.
	visited map[grid.Coordinate]bool            // Tracks if a cell's distance is finalized.
	pq      nodePQ                              // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it into the heap.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: repeatedly extract the closest unsettled cell and
// relax its moves, until the heap empties or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		// Everything left is farther than the cap.
		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each move out of u and records strictly shorter distances.
func (r *runner) relax(u grid.Coordinate) {
	for _, v := range r.g.Neighbors(u) {
		newDist := r.dist[u] + grid.Distance(u, v)
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	id   grid.Coordinate // cell
	dist float64         // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// When a shorter distance to an existing cell is found we push a new *nodeItem;
// the outdated entry remains but is ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
