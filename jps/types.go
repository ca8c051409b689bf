package jps

import "github.com/katalvlaran/gridpath/grid"

// Options configures observation hooks for a search. The hooks never alter
// the result; they exist for counters, tracing and visualisation.
type Options struct {
	// OnExpand is called for every popped jump point that is neither the goal
	// nor already closed, immediately before its jump scan.
	OnExpand func(pos grid.Coordinate)

	// OnPush is called for every jump point added to the frontier with its F score.
	OnPush func(pos grid.Coordinate, f float64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Coordinate) {},
		OnPush:   func(grid.Coordinate, float64) {},
	}
}

// WithOnExpand registers a callback run for each expanded node.
func WithOnExpand(fn func(pos grid.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run for each frontier push.
func WithOnPush(fn func(pos grid.Coordinate, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}
