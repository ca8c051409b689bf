// Package dijkstra defines configuration options and sentinel errors
// for Dijkstra's shortest-path algorithm on grids.
//
// Dijkstra computes the minimum-cost route from a single source cell to all
// other reachable cells, with the same Euclidean edge costs the gridpath
// engines use (1 orthogonal, √2 diagonal).
//
// Options:
//
//	– Source:      the starting cell (must be traversable).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; cells beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid is nil.
//	– ErrSourceBlocked  if the source cell is blocked or off-grid.
//	– ErrBadMaxDistance if MaxDistance < 0.
//	– ErrNoPath         from PathTo when the target was not reached.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(
//	    g,
//	    dijkstra.Source(grid.Coordinate{X: 0, Y: 0}),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to (3,4): %f\n", dist[grid.Coordinate{X: 3, Y: 4}])
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceBlocked indicates that the source cell is not traversable.
	ErrSourceBlocked = errors.New("dijkstra: source cell is not traversable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the requested target was never reached.
	ErrNoPath = errors.New("dijkstra: target not reached from source")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell (must be traversable).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      grid.Coordinate // The source cell
	ReturnPath  bool            // Whether to return the predecessor map
	MaxDistance float64         // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell.
func Source(c grid.Coordinate) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source cell.
//
// Defaults:
//   - Source:      <as passed>.
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
func DefaultOptions(source grid.Coordinate) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
