// Package grid provides utilities to treat a 2D grid of integer cell values
// as a traversable map. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Construction from integer matrices or ASCII rows
//   - Identification of connected components of open cells
//
// Cells with value < PassableThreshold are blocked; cells with value ≥ PassableThreshold are open.
package grid

import (
	"fmt"
)

// Cell values produced by FromStrings.
const (
	blockedValue = 0
	openValue    = 1
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []Coordinate
	if opts.Conn == Conn8 {
		offsets = []Coordinate{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = []Coordinate{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		neighborOffsets:   offsets,
	}

	return gg, nil
}

// From2D builds a GridGraph with the default PassableThreshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// FromStrings builds a GridGraph from ASCII rows using the MovingAI terrain alphabet:
// '.', 'G' and 'S' are open; '@', 'O', 'T', 'W' and '#' are blocked.
// Any other rune yields ErrUnknownTerrain with its position.
func FromStrings(rows []string, conn Connectivity) (*GridGraph, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x, r := range row {
			v, err := terrainValue(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %q: %w", y, x, r, err)
			}
			values[y] = append(values[y], v)
		}
	}
	return From2D(values, conn)
}

// terrainValue maps a terrain rune to a cell value.
func terrainValue(r rune) (int, error) {
	switch r {
	case '.', 'G', 'S':
		return openValue, nil
	case '@', 'O', 'T', 'W', '#':
		return blockedValue, nil
	default:
		return 0, ErrUnknownTerrain
	}
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// Traversable reports whether c is on the grid and open.
// Off-grid coordinates are never traversable.
// Complexity: O(1).
func (gg *GridGraph) Traversable(c Coordinate) bool {
	return gg.InBounds(c) && gg.CellValues[c.Y][c.X] >= gg.PassableThreshold
}

// Neighbors returns the open cells adjacent to c under gg.Conn, in the
// precomputed offset order (clockwise from north).
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Shift(c, d)
		if gg.Traversable(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []Coordinate {
	return gg.neighborOffsets
}

// Index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(c Coordinate) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row‑major index back to a Coordinate.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % gg.Width, Y: idx / gg.Width}
}

// OpenCells counts traversable cells.
func (gg *GridGraph) OpenCells() int {
	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] >= gg.PassableThreshold {
				n++
			}
		}
	}
	return n
}
