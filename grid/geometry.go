package grid

import "math"

// Distance returns the Euclidean distance between a and b.
// It is the single metric used for both edge cost and heuristic: a diagonal
// step costs √2, which matches the heuristic's diagonal estimate.
func Distance(a, b Coordinate) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Direction returns the unit step from `from` toward `to`, each axis clamped to {-1, 0, 1}.
func Direction(from, to Coordinate) Coordinate {
	return Coordinate{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
}

// Shift moves c by d.
func Shift(c, d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// Adjacent reports whether a and b differ by at most one cell on each axis.
func Adjacent(a, b Coordinate) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
