package route_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

func TestRoute_Zero(t *testing.T) {
	var r route.Route
	assert.Equal(t, 0.0, r.Distance())
	assert.True(t, r.Empty())
	assert.Empty(t, r.Steps())
	assert.True(t, r.Contiguous())
	_, ok := r.Goal()
	assert.False(t, ok)
	_, ok = r.Start()
	assert.False(t, ok)
	assert.Equal(t, "0.000000 []", r.String())
}

// TestRoute_Immutable ensures neither the input slice nor Steps() can alter the route.
func TestRoute_Immutable(t *testing.T) {
	steps := []grid.Coordinate{{X: 1, Y: 1}, {X: 0, Y: 0}}
	r := route.New(math.Sqrt2, steps)

	steps[0] = grid.Coordinate{X: 9, Y: 9}
	out := r.Steps()
	out[1] = grid.Coordinate{X: 7, Y: 7}

	require.Equal(t, []grid.Coordinate{{X: 1, Y: 1}, {X: 0, Y: 0}}, r.Steps())
	goal, _ := r.Goal()
	start, _ := r.Start()
	assert.Equal(t, grid.Coordinate{X: 1, Y: 1}, goal)
	assert.Equal(t, grid.Coordinate{X: 0, Y: 0}, start)
}

func TestRoute_ContiguousAndLength(t *testing.T) {
	ok := route.New(1+math.Sqrt2, []grid.Coordinate{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}})
	assert.True(t, ok.Contiguous())
	assert.InDelta(t, ok.Distance(), ok.Length(), 1e-12)
	assert.Equal(t, 3, ok.Len())

	jump := route.New(2, []grid.Coordinate{{X: 2, Y: 0}, {X: 0, Y: 0}})
	assert.False(t, jump.Contiguous())
	assert.Equal(t, "2.000000 [2,0 0,0]", jump.String())
}
