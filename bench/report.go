package bench

import (
	"fmt"
	"time"
)

// Mismatch kinds.
const (
	KindFound     = "found"
	KindDistance  = "distance"
	KindAdjacency = "adjacency"
	KindCost      = "cost"
	KindSteps     = "steps"
)

// Result is the outcome of one strategy on one scenario.
type Result struct {
	Scenario   int // index into the scenarios passed to Run
	Strategy   string
	Found      bool
	Distance   float64
	Steps      int
	Contiguous bool
	Expansions int
	Duration   time.Duration
}

// Mismatch is one failed verification.
type Mismatch struct {
	Scenario int
	Strategy string
	Kind     string
	Detail   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("scenario %d %s %s: %s", m.Scenario, m.Strategy, m.Kind, m.Detail)
}

// Report collects the results of a run in scenario order, then strategy order.
type Report struct {
	Results    []Result
	Mismatches []Mismatch
	// Skipped counts scenarios not run because the context was cancelled.
	Skipped int
}

// OK reports whether every scenario ran and verified cleanly.
func (r Report) OK() bool { return len(r.Mismatches) == 0 && r.Skipped == 0 }

// StrategySummary aggregates the results of one strategy.
type StrategySummary struct {
	Strategy   string
	Searches   int
	Found      int
	Expansions int
	Duration   time.Duration
	Mismatches int
}

// Summary aggregates per strategy, in the order strategies first appear.
func (r Report) Summary() []StrategySummary {
	var out []StrategySummary
	idx := make(map[string]int)
	at := func(name string) *StrategySummary {
		i, ok := idx[name]
		if !ok {
			i = len(out)
			idx[name] = i
			out = append(out, StrategySummary{Strategy: name})
		}
		return &out[i]
	}

	for _, res := range r.Results {
		s := at(res.Strategy)
		s.Searches++
		if res.Found {
			s.Found++
		}
		s.Expansions += res.Expansions
		s.Duration += res.Duration
	}
	for _, m := range r.Mismatches {
		at(m.Strategy).Mismatches++
	}
	return out
}
