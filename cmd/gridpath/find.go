package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/bench"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/movingai"
)

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	mapPath, _ := cmd.Flags().GetString("map")
	fromArg, _ := cmd.Flags().GetString("from")
	toArg, _ := cmd.Flags().GetString("to")
	algo, _ := cmd.Flags().GetString("algo")
	if algo == "" && len(cfg.Search.Algorithms) > 0 {
		algo = cfg.Search.Algorithms[0]
	}

	from, err := parseCoordinate(fromArg)
	if err != nil {
		return err
	}
	to, err := parseCoordinate(toArg)
	if err != nil {
		return err
	}
	strategy, err := bench.StrategyByName(algo)
	if err != nil {
		return err
	}
	g, err := movingai.LoadMap(mapPath)
	if err != nil {
		return err
	}
	for _, c := range []grid.Coordinate{from, to} {
		if !g.Traversable(c) {
			logger.Warn().Str("cell", c.String()).Msg("endpoint is blocked or off the map")
		}
	}

	expanded := 0
	r, ok := strategy.Find(g, from, to, func(grid.Coordinate) { expanded++ })
	logger.Debug().
		Str("algorithm", strategy.Name).
		Bool("found", ok).
		Int("expansions", expanded).
		Msg("search finished")

	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintf(out, "no route from %s to %s\n", from, to)
		return nil
	}
	fmt.Fprintf(out, "algorithm  %s\n", strategy.Name)
	fmt.Fprintf(out, "distance   %.6f\n", r.Distance())
	fmt.Fprintf(out, "steps      %d\n", r.Len())
	fmt.Fprintf(out, "expanded   %d\n", expanded)
	fmt.Fprintf(out, "route      %s\n", r)
	return nil
}
