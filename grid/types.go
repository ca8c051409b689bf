package grid

import "fmt"

// Coordinate addresses a single cell. Equality is structural, so it can be
// used directly as a map key. Coordinates outside a grid are representable
// and simply report as not traversable.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "x,y".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Grid is the capability the search engines consume.
//
// Traversable must be a pure query and must return false (never panic) for
// coordinates off the grid, including positions one cell outside its border.
// Neighbors returns every traversable cell reachable from c in one move; the
// engines treat it as the authoritative adjacency.
//
// Implementations shared between goroutines must be safe for concurrent reads.
type Grid interface {
	Traversable(c Coordinate) bool
	Neighbors(c Coordinate) []Coordinate
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	// Diagonal moves only require the destination to be open.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// PassableThreshold specifies the minimum cell value considered open.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=1 (values ≥1 are open), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn8,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Conn and PassableThreshold are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int
	neighborOffsets   []Coordinate
}

// Compile-time check that GridGraph satisfies Grid.
var _ Grid = (*GridGraph)(nil)
