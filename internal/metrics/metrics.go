// Package metrics holds the prometheus collectors recorded by the bench
// runner. Each Search owns a private registry, so runs never share state.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Outcome labels for SearchesTotal.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Search groups the collectors for one bench run.
type Search struct {
	Registry *prometheus.Registry

	Duration      *prometheus.HistogramVec
	Expansions    *prometheus.HistogramVec
	SearchesTotal *prometheus.CounterVec
	Mismatches    *prometheus.CounterVec
}

// New builds and registers the collectors on a fresh registry.
func New(logger zerolog.Logger) *Search {
	m := &Search{
		Registry: prometheus.NewRegistry(),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Wall time of a single search",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
		Expansions: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_expansions",
			Help:    "Nodes expanded by a single search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm"}),
		SearchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Searches run by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		Mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_mismatches_total",
			Help: "Verification failures by kind",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{m.Duration, m.Expansions, m.SearchesTotal, m.Mismatches} {
		m.Registry.MustRegister(c)
	}
	logger.Debug().Msg("search metrics initialized")
	return m
}

// ObserveSearch records one finished search.
func (m *Search) ObserveSearch(algorithm string, found bool, expansions int, took time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeNotFound
	if found {
		outcome = OutcomeFound
	}
	m.SearchesTotal.WithLabelValues(algorithm, outcome).Inc()
	m.Duration.WithLabelValues(algorithm).Observe(took.Seconds())
	m.Expansions.WithLabelValues(algorithm).Observe(float64(expansions))
}

// ObserveMismatch counts one verification failure.
func (m *Search) ObserveMismatch(kind string) {
	if m == nil {
		return
	}
	m.Mismatches.WithLabelValues(kind).Inc()
}

// WriteTextfile writes the registry in the text exposition format, for the
// node_exporter textfile collector or a plain look at the numbers.
func (m *Search) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
