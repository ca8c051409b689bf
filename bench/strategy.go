package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/jps"
	"github.com/katalvlaran/gridpath/route"
)

// ErrUnknownStrategy is returned by StrategyByName for unrecognized names.
var ErrUnknownStrategy = errors.New("bench: unknown strategy")

// FindFunc runs one search; onExpand is called for each expanded node.
type FindFunc func(g grid.Grid, start, goal grid.Coordinate, onExpand func(grid.Coordinate)) (route.Route, bool)

// Strategy is a named search engine.
type Strategy struct {
	Name string
	Find FindFunc
}

// AStar returns the classical A* strategy.
func AStar() Strategy {
	return Strategy{
		Name: "astar",
		Find: func(g grid.Grid, start, goal grid.Coordinate, onExpand func(grid.Coordinate)) (route.Route, bool) {
			return astar.Search(g, start, goal, astar.WithOnExpand(onExpand))
		},
	}
}

// JPS returns the Jump Point Search strategy.
func JPS() Strategy {
	return Strategy{
		Name: "jps",
		Find: func(g grid.Grid, start, goal grid.Coordinate, onExpand func(grid.Coordinate)) (route.Route, bool) {
			return jps.Search(g, start, goal, jps.WithOnExpand(onExpand))
		},
	}
}

// StrategyByName resolves "astar" or "jps" (case-insensitive).
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*":
		return AStar(), nil
	case "jps":
		return JPS(), nil
	}
	return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// StrategiesByName resolves every name in order, dropping duplicates.
func StrategiesByName(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		s, err := StrategyByName(n)
		if err != nil {
			return nil, err
		}
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		out = append(out, s)
	}
	return out, nil
}
