// Command gridpath runs grid shortest-path searches from the command line.
//
//	gridpath find  --map arena.map --from 1,2 --to 5,2 --algo jps
//	gridpath bench --map arena.map --scen arena.map.scen --workers 4
//
// Settings come from an optional YAML file (--config or GRIDPATH_CONFIG),
// GRIDPATH_* environment variables and finally the flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
)

var version = "0.1.0-dev"

// ErrBadCoordinate is returned for a --from/--to value that is not "x,y".
var ErrBadCoordinate = errors.New("gridpath: coordinate must be x,y")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gridpath",
		Short:   "Shortest paths on uniform grids with A* and Jump Point Search",
		Version: version,
		Long: `gridpath finds shortest routes between two cells of a uniform grid map
(MovingAI .map format) with A* or Jump Point Search, and benchmarks both
engines over MovingAI .scen scenario files.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "YAML config file (default: $GRIDPATH_CONFIG)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "Human-readable logs instead of JSON")

	findCmd := &cobra.Command{
		Use:   "find",
		Short: "Find the shortest route between two cells",
		Args:  cobra.NoArgs,
		RunE:  runFind,
	}
	findCmd.Flags().String("map", "", "MovingAI .map file")
	findCmd.Flags().String("from", "", "Start cell as x,y")
	findCmd.Flags().String("to", "", "Goal cell as x,y")
	findCmd.Flags().String("algo", "", "Search algorithm: astar|jps (default: first configured)")
	_ = findCmd.MarkFlagRequired("map")
	_ = findCmd.MarkFlagRequired("from")
	_ = findCmd.MarkFlagRequired("to")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run and verify every scenario of a .scen file",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().String("map", "", "MovingAI .map file")
	benchCmd.Flags().String("scen", "", "MovingAI .scen file")
	benchCmd.Flags().StringSlice("algo", nil, "Algorithms to compare (default: configured list)")
	benchCmd.Flags().Int("workers", 0, "Concurrent scenario workers (default: configured)")
	benchCmd.Flags().String("metrics-out", "", "Write prometheus metrics to this file")
	benchCmd.Flags().Bool("no-verify", false, "Skip distance and adjacency checks")
	_ = benchCmd.MarkFlagRequired("map")
	_ = benchCmd.MarkFlagRequired("scen")

	rootCmd.AddCommand(findCmd, benchCmd)
	return rootCmd
}

// loadConfig resolves the config file, env and persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if cfg, err = config.LoadFile(path); err != nil {
			return cfg, err
		}
	} else {
		cfg = config.Load()
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if pretty, _ := cmd.Flags().GetBool("log-pretty"); pretty {
		cfg.Logging.Pretty = true
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) logging.Logger {
	return logging.NewWithWriter(cfg, cmd.ErrOrStderr())
}

// parseCoordinate parses "x,y" (spaces allowed around the numbers).
func parseCoordinate(s string) (grid.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return grid.Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	return grid.Coordinate{X: x, Y: y}, nil
}
