package jps_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/jps"
)

func benchGrid(b *testing.B, n int, density float64) *grid.GridGraph {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			if rng.Float64() >= density {
				values[y][x] = 1
			}
		}
	}
	values[0][0], values[n-1][n-1] = 1, 1
	g, err := grid.From2D(values, grid.Conn8)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	return g
}

// BenchmarkSearch measures a corner-to-corner search on a 128×128 grid with
// about 20% of the cells blocked.
func BenchmarkSearch(b *testing.B) {
	const n = 128
	g := benchGrid(b, n, 0.2)
	start, goal := grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: n - 1, Y: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = jps.Search(g, start, goal)
	}
}

// BenchmarkSearch_Open measures the case jumping is built for: no obstacles.
func BenchmarkSearch_Open(b *testing.B) {
	const n = 128
	g := benchGrid(b, n, 0)
	start, goal := grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: n - 1, Y: n / 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = jps.Search(g, start, goal)
	}
}
