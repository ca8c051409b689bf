package movingai

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Scenario is one query from a .scen file.
type Scenario struct {
	Bucket        int             // difficulty bucket, grouping queries of similar length
	Map           string          // map file name the query was generated for
	Width, Height int             // declared map size
	Start, Goal   grid.Coordinate // query endpoints
	Optimal       float64         // expected shortest distance
}

// scenarioFields is the number of fields on a scenario line.
const scenarioFields = 9

// ParseScenarios reads a .scen file. Blank lines are skipped.
func ParseScenarios(r io.Reader) ([]Scenario, error) {
	sc := bufio.NewScanner(r)

	line := 0
	if !nextNonBlank(sc, &line) {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty file: %w", ErrBadVersion)
	}
	if v := strings.Fields(sc.Text()); len(v) != 2 || v[0] != "version" || (v[1] != "1" && v[1] != "1.0") {
		return nil, fmt.Errorf("line %d: %q: %w", line, sc.Text(), ErrBadVersion)
	}

	var out []Scenario
	for nextNonBlank(sc, &line) {
		s, err := parseScenario(strings.Fields(sc.Text()))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// nextNonBlank advances sc past blank lines, counting every line read.
func nextNonBlank(sc *bufio.Scanner, line *int) bool {
	for sc.Scan() {
		*line++
		if strings.TrimSpace(sc.Text()) != "" {
			return true
		}
	}
	return false
}

func parseScenario(f []string) (Scenario, error) {
	if len(f) != scenarioFields {
		return Scenario{}, fmt.Errorf("%d fields, want %d: %w", len(f), scenarioFields, ErrBadScenario)
	}

	var ints [7]int
	for i, idx := range [7]int{0, 2, 3, 4, 5, 6, 7} {
		n, err := strconv.Atoi(f[idx])
		if err != nil {
			return Scenario{}, fmt.Errorf("field %d %q: %w", idx+1, f[idx], ErrBadScenario)
		}
		ints[i] = n
	}
	opt, err := strconv.ParseFloat(f[8], 64)
	if err != nil || opt < 0 {
		return Scenario{}, fmt.Errorf("optimal length %q: %w", f[8], ErrBadScenario)
	}

	return Scenario{
		Bucket:  ints[0],
		Map:     f[1],
		Width:   ints[1],
		Height:  ints[2],
		Start:   grid.Coordinate{X: ints[3], Y: ints[4]},
		Goal:    grid.Coordinate{X: ints[5], Y: ints[6]},
		Optimal: opt,
	}, nil
}

// LoadScenarios opens path and parses it with ParseScenarios.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, err := ParseScenarios(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
