package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textfile dumps the registry in exposition format.
func textfile(t *testing.T, m *Search) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.prom")
	require.NoError(t, m.WriteTextfile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestObserveSearch(t *testing.T) {
	m := New(zerolog.Nop())
	m.ObserveSearch("jps", true, 12, 3*time.Millisecond)
	m.ObserveSearch("jps", false, 40, time.Millisecond)
	m.ObserveSearch("astar", true, 90, 5*time.Millisecond)
	m.ObserveSearch("astar", true, 70, 5*time.Millisecond)

	out := textfile(t, m)
	assert.Contains(t, out, `gridpath_searches_total{algorithm="jps",outcome="found"} 1`)
	assert.Contains(t, out, `gridpath_searches_total{algorithm="jps",outcome="not_found"} 1`)
	assert.Contains(t, out, `gridpath_searches_total{algorithm="astar",outcome="found"} 2`)
	assert.Contains(t, out, `gridpath_search_expansions_sum{algorithm="astar"} 160`)
	assert.Contains(t, out, `gridpath_search_duration_seconds_count{algorithm="jps"} 2`)
}

func TestObserveMismatch(t *testing.T) {
	m := New(zerolog.Nop())
	m.ObserveMismatch("distance")
	m.ObserveMismatch("distance")
	m.ObserveMismatch("steps")

	out := textfile(t, m)
	assert.Contains(t, out, `gridpath_mismatches_total{kind="distance"} 2`)
	assert.Contains(t, out, `gridpath_mismatches_total{kind="steps"} 1`)
}

func TestNilSearchIsNoop(t *testing.T) {
	var m *Search
	assert.NotPanics(t, func() {
		m.ObserveSearch("astar", true, 1, time.Second)
		m.ObserveMismatch("distance")
	})
}

func TestPrivateRegistries(t *testing.T) {
	a, b := New(zerolog.Nop()), New(zerolog.Nop())
	a.ObserveMismatch("steps")
	assert.NotContains(t, textfile(t, b), `kind="steps"`)
}
