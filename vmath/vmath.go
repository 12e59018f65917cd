package vmath

import "math"

// --- Scalar ---

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

// Lerp interpolates from a to b, t is not clamped
// Exact at both ends: Lerp(a, b, 1) == b
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Progress returns elapsed/duration clamped to [0, 1], non-positive duration counts as complete
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp(elapsed/duration, 0, 1)
}

// SafeAcos is math.Acos with the argument clamped into the valid domain
// Rounding in normalized dot products can land just outside [-1, 1]
func SafeAcos(c float64) float64 {
	return math.Acos(Clamp(c, -1, 1))
}

// Wrap maps v into [0, period)
func Wrap(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	return m
}

// NearlyEqual compares with absolute tolerance
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
