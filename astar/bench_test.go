package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkSearch measures a corner-to-corner search on a 128×128 grid with
// about 20% of the cells blocked. The corners are forced open.
func BenchmarkSearch(b *testing.B) {
	const n = 128
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(b, rng, n, n, 0.2)
	g.CellValues[0][0], g.CellValues[n-1][n-1] = 1, 1
	start, goal := grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: n - 1, Y: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal)
	}
}

// BenchmarkSearch_Open measures the same search with no obstacles at all.
func BenchmarkSearch_Open(b *testing.B) {
	const n = 128
	g := randomGrid(b, rand.New(rand.NewSource(1)), n, n, 0)
	start, goal := grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: n - 1, Y: n / 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal)
	}
}
