package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/movingai"
)

// Runner runs Strategies over scenarios on one grid.
type Runner struct {
	Grid       grid.Grid
	Strategies []Strategy
	// Workers is the number of concurrent scenario workers; values below 1 mean 1.
	Workers int
	Logger  zerolog.Logger
	// Metrics is optional.
	Metrics *metrics.Search
	// NoVerify disables the checks; the Report then carries results only.
	NoVerify bool
}

// expectation is what a scenario should produce.
type expectation struct {
	found    bool
	distance float64
}

// Run searches every scenario with every strategy and verifies the results.
// Cancelling ctx stops dispatching new scenarios; those are counted in
// Report.Skipped.
func (r *Runner) Run(ctx context.Context, scenarios []movingai.Scenario) Report {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	r.Logger.Info().
		Int("scenarios", len(scenarios)).
		Int("strategies", len(r.Strategies)).
		Int("workers", workers).
		Msg("bench run started")

	results := make([][]Result, len(scenarios))
	done := make([]bool, len(scenarios))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.runScenario(i, scenarios[i])
				done[i] = true
			}
		}()
	}

dispatch:
	for i := range scenarios {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	var rep Report
	var labels []int
	if gg, ok := r.Grid.(*grid.GridGraph); ok && !r.NoVerify {
		labels = gg.ComponentLabels()
	}
	for i, s := range scenarios {
		if !done[i] {
			rep.Skipped++
			continue
		}
		rep.Results = append(rep.Results, results[i]...)
		if !r.NoVerify {
			rep.Mismatches = append(rep.Mismatches, r.verify(i, r.expect(s, labels), results[i])...)
		}
	}

	for _, m := range rep.Mismatches {
		r.Metrics.ObserveMismatch(m.Kind)
		r.Logger.Warn().
			Int("scenario", m.Scenario).
			Str("algorithm", m.Strategy).
			Str("kind", m.Kind).
			Msg(m.Detail)
	}
	r.Logger.Info().
		Int("results", len(rep.Results)).
		Int("mismatches", len(rep.Mismatches)).
		Int("skipped", rep.Skipped).
		Msg("bench run finished")
	return rep
}

// runScenario runs every strategy on s.
func (r *Runner) runScenario(i int, s movingai.Scenario) []Result {
	out := make([]Result, 0, len(r.Strategies))
	for _, st := range r.Strategies {
		expansions := 0
		began := time.Now()
		rt, found := st.Find(r.Grid, s.Start, s.Goal, func(grid.Coordinate) { expansions++ })
		took := time.Since(began)

		r.Metrics.ObserveSearch(st.Name, found, expansions, took)
		r.Logger.Debug().
			Int("scenario", i).
			Str("algorithm", st.Name).
			Bool("found", found).
			Float64("distance", rt.Distance()).
			Int("expansions", expansions).
			Dur("took", took).
			Msg("search")

		out = append(out, Result{
			Scenario:   i,
			Strategy:   st.Name,
			Found:      found,
			Distance:   rt.Distance(),
			Steps:      rt.Len(),
			Contiguous: rt.Contiguous(),
			Expansions: expansions,
			Duration:   took,
		})
	}
	return out
}

// expect derives the expected outcome of s. A recorded optimum is trusted;
// otherwise reachability comes from the component labels (when the grid is a
// *grid.GridGraph) and the distance from a Dijkstra run.
func (r *Runner) expect(s movingai.Scenario, labels []int) expectation {
	if s.Start == s.Goal {
		return expectation{found: true}
	}
	if s.Optimal > 0 {
		return expectation{found: true, distance: s.Optimal}
	}
	if labels != nil {
		gg := r.Grid.(*grid.GridGraph)
		if !gg.Traversable(s.Start) || !gg.Traversable(s.Goal) ||
			labels[gg.Index(s.Start)] != labels[gg.Index(s.Goal)] {
			return expectation{}
		}
	}
	dist, _, err := dijkstra.Dijkstra(r.Grid, dijkstra.Source(s.Start))
	if err != nil {
		return expectation{}
	}
	d, ok := dist[s.Goal]
	return expectation{found: ok, distance: d}
}

// verify checks each result against exp and against the first strategy.
func (r *Runner) verify(i int, exp expectation, results []Result) []Mismatch {
	var out []Mismatch
	add := func(res Result, kind, format string, args ...interface{}) {
		out = append(out, Mismatch{Scenario: i, Strategy: res.Strategy, Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	for _, res := range results {
		if res.Found != exp.found {
			add(res, KindFound, "found=%t, want %t", res.Found, exp.found)
			continue
		}
		if !res.Found {
			continue
		}
		if float32(res.Distance) != float32(exp.distance) {
			add(res, KindDistance, "distance %.8f, want %.8f", res.Distance, exp.distance)
		}
		if !res.Contiguous {
			add(res, KindAdjacency, "route has a gap between consecutive steps")
		}
	}

	if len(results) < 2 {
		return out
	}
	ref := results[0]
	for _, res := range results[1:] {
		if !ref.Found || !res.Found {
			continue
		}
		if float32(res.Distance) != float32(ref.Distance) {
			add(res, KindCost, "distance %.8f, %s has %.8f", res.Distance, ref.Strategy, ref.Distance)
		}
		if res.Steps != ref.Steps {
			add(res, KindSteps, "%d steps, %s has %d", res.Steps, ref.Strategy, ref.Steps)
		}
	}
	return out
}
