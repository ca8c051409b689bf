// File: grid/components_test.go
package grid

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = open, 0 = blocked):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if !reflect.DeepEqual(sizes, []int{2, 4}) {
		t.Errorf("component sizes = %v; want [2 4]", sizes)
	}
}

// TestConnectedComponents_Diagonal8 checks that Conn8 merges regions touching at a corner.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 1},
	}
	gg4, _ := From2D(grid, Conn4)
	if got := len(gg4.ConnectedComponents()); got != 2 {
		t.Errorf("Conn4 components = %d; want 2", got)
	}
	gg8, _ := From2D(grid, Conn8)
	comps := gg8.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("Conn8 components = %d; want 1", len(comps))
	}
	want := []int{gg8.Index(Coordinate{0, 0}), gg8.Index(Coordinate{1, 1})}
	if !reflect.DeepEqual(comps[0], want) {
		t.Errorf("component = %v; want %v", comps[0], want)
	}
}

// TestComponentLabels_Blocked ensures blocked cells carry label -1.
func TestComponentLabels_Blocked(t *testing.T) {
	gg, _ := From2D([][]int{{1, 0, 1}}, Conn8)
	labels := gg.ComponentLabels()
	if !reflect.DeepEqual(labels, []int{0, -1, 1}) {
		t.Errorf("labels = %v; want [0 -1 1]", labels)
	}
}

// TestConnected covers reachable, separated, blocked and off-grid endpoints.
func TestConnected(t *testing.T) {
	gg, err := FromStrings([]string{
		"..@..",
		"..@..",
		"..@..",
	}, Conn8)
	if err != nil {
		t.Fatalf("FromStrings failed: %v", err)
	}

	cases := []struct {
		name string
		a, b Coordinate
		want bool
	}{
		{"SameSide", Coordinate{0, 0}, Coordinate{1, 2}, true},
		{"AcrossWall", Coordinate{0, 0}, Coordinate{4, 2}, false},
		{"BlockedEndpoint", Coordinate{0, 0}, Coordinate{2, 1}, false},
		{"OffGrid", Coordinate{0, 0}, Coordinate{-1, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gg.Connected(tc.a, tc.b); got != tc.want {
				t.Errorf("Connected(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
