package movingai

import "errors"

// Sentinel errors returned by the parsers.
var (
	// ErrBadHeader indicates a missing or malformed map header line.
	ErrBadHeader = errors.New("movingai: bad map header")

	// ErrBadDimensions indicates terrain rows that disagree with the header.
	ErrBadDimensions = errors.New("movingai: map rows do not match declared dimensions")

	// ErrBadVersion indicates a scenario file without a supported version line.
	ErrBadVersion = errors.New("movingai: unsupported scenario version")

	// ErrBadScenario indicates a malformed scenario line.
	ErrBadScenario = errors.New("movingai: bad scenario line")
)
