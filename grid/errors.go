package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownTerrain indicates an ASCII row holds a rune with no terrain meaning.
	ErrUnknownTerrain = errors.New("grid: unknown terrain rune")
)
