package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/bench"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/movingai"
)

// errMismatches makes the command exit non-zero when verification fails.
var errMismatches = errors.New("gridpath: bench verification failed")

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	mapPath, _ := cmd.Flags().GetString("map")
	scenPath, _ := cmd.Flags().GetString("scen")
	if algos, _ := cmd.Flags().GetStringSlice("algo"); len(algos) > 0 {
		cfg.Search.Algorithms = algos
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Bench.Workers = workers
	}
	if out, _ := cmd.Flags().GetString("metrics-out"); out != "" {
		cfg.Bench.MetricsOut = out
	}
	if noVerify, _ := cmd.Flags().GetBool("no-verify"); noVerify {
		cfg.Bench.Verify = false
	}

	strategies, err := bench.StrategiesByName(cfg.Search.Algorithms)
	if err != nil {
		return err
	}
	g, err := movingai.LoadMap(mapPath)
	if err != nil {
		return err
	}
	scens, err := movingai.LoadScenarios(scenPath)
	if err != nil {
		return err
	}
	for i, s := range scens {
		if s.Width != g.Width || s.Height != g.Height {
			logger.Warn().
				Int("scenario", i).
				Str("scenario_map", s.Map).
				Str("map", filepath.Base(mapPath)).
				Msg("scenario was generated for a map of another size")
			break
		}
	}

	m := metrics.New(logger)
	runner := &bench.Runner{
		Grid:       g,
		Strategies: strategies,
		Workers:    cfg.Bench.Workers,
		Logger:     logger,
		Metrics:    m,
		NoVerify:   !cfg.Bench.Verify,
	}
	rep := runner.Run(cmd.Context(), scens)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSEARCHES\tFOUND\tEXPANDED\tTIME\tMISMATCHES")
	for _, s := range rep.Summary() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%d\n", s.Strategy, s.Searches, s.Found, s.Expansions, s.Duration, s.Mismatches)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if cfg.Bench.MetricsOut != "" {
		if err := m.WriteTextfile(cfg.Bench.MetricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info().Str("path", cfg.Bench.MetricsOut).Msg("metrics written")
	}

	if !rep.OK() {
		for _, mm := range rep.Mismatches {
			fmt.Fprintln(cmd.ErrOrStderr(), mm)
		}
		return fmt.Errorf("%w: %d mismatches, %d skipped", errMismatches, len(rep.Mismatches), rep.Skipped)
	}
	return nil
}
