package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bench"
	"github.com/katalvlaran/gridpath/grid"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"GRIDPATH_CONFIG", "GRIDPATH_LOG_LEVEL", "GRIDPATH_ALGORITHMS", "GRIDPATH_WORKERS", "GRIDPATH_METRICS_OUT"} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

var (
	wallMap  = filepath.Join("testdata", "wall.map")
	wallScen = filepath.Join("testdata", "wall.map.scen")
)

func TestParseCoordinate(t *testing.T) {
	c, err := parseCoordinate(" 3, 14")
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinate{X: 3, Y: 14}, c)

	for _, bad := range []string{"", "3", "3,4,5", "x,1", "1,"} {
		_, err := parseCoordinate(bad)
		assert.ErrorIs(t, err, ErrBadCoordinate, bad)
	}
}

func TestFind(t *testing.T) {
	for _, algo := range []string{"astar", "jps"} {
		t.Run(algo, func(t *testing.T) {
			out, _, err := execute(t, "find", "--map", wallMap, "--from", "1,2", "--to", "5,2", "--algo", algo)
			require.NoError(t, err)
			assert.Contains(t, out, "algorithm  "+algo)
			assert.Contains(t, out, "distance   5.656854")
			assert.Contains(t, out, "steps      5")
			assert.Contains(t, out, "route      5.656854 [5,2 ")
		})
	}
}

func TestFind_NoRoute(t *testing.T) {
	out, stderr, err := execute(t, "find", "--map", wallMap, "--from", "1,2", "--to", "3,2", "--algo", "astar")
	require.NoError(t, err)
	assert.Contains(t, out, "no route from 1,2 to 3,2")
	assert.Contains(t, stderr, "endpoint is blocked")
}

func TestFind_Errors(t *testing.T) {
	_, _, err := execute(t, "find", "--map", wallMap, "--from", "1;2", "--to", "5,2")
	assert.ErrorIs(t, err, ErrBadCoordinate)

	_, _, err = execute(t, "find", "--map", wallMap, "--from", "1,2", "--to", "5,2", "--algo", "bfs")
	assert.ErrorIs(t, err, bench.ErrUnknownStrategy)

	_, _, err = execute(t, "find", "--map", filepath.Join("testdata", "missing.map"), "--from", "1,2", "--to", "5,2")
	assert.Error(t, err)

	_, _, err = execute(t, "find", "--from", "1,2", "--to", "5,2")
	assert.Error(t, err, "--map is required")
}

func TestBench(t *testing.T) {
	metricsOut := filepath.Join(t.TempDir(), "bench.prom")
	out, _, err := execute(t, "bench", "--map", wallMap, "--scen", wallScen, "--workers", "2", "--metrics-out", metricsOut)
	require.NoError(t, err)
	assert.Contains(t, out, "ALGORITHM")
	assert.Regexp(t, `(?m)^astar\s+4\s+4\s`, out)
	assert.Regexp(t, `(?m)^jps\s+4\s+4\s`, out)

	b, err := os.ReadFile(metricsOut)
	require.NoError(t, err)
	assert.Contains(t, string(b), "gridpath_searches_total")
}

func TestBench_Mismatch(t *testing.T) {
	scen := filepath.Join(t.TempDir(), "wrong.scen")
	require.NoError(t, os.WriteFile(scen, []byte("version 1\n0\twall.map\t7\t5\t1\t2\t5\t2\t5.00000000\n"), 0o600))

	_, stderr, err := execute(t, "bench", "--map", wallMap, "--scen", scen, "--algo", "jps")
	assert.ErrorIs(t, err, errMismatches)
	assert.Contains(t, stderr, "distance")

	_, _, err = execute(t, "bench", "--map", wallMap, "--scen", scen, "--algo", "jps", "--no-verify")
	assert.NoError(t, err)
}

func TestBench_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("search:\n  algorithms: [jps]\n"), 0o600))

	out, _, err := execute(t, "bench", "--config", cfg, "--map", wallMap, "--scen", wallScen)
	require.NoError(t, err)
	assert.Contains(t, out, "jps")
	assert.NotContains(t, out, "astar")

	_, _, err = execute(t, "bench", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "--map", wallMap, "--scen", wallScen)
	assert.Error(t, err)
}
