package vmath

import "math"

// Distance returns the Euclidean length of (dx, dy)
func Distance(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize returns the unit vector of (dx, dy) and its length, zero-safe
func Normalize(dx, dy float64) (nx, ny, length float64) {
	length = Distance(dx, dy)
	if length == 0 {
		return 0, 0, 0
	}
	return dx / length, dy / length, length
}

// Sign returns -1, 0 or 1 following the sign of v; NaN maps to 0
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
