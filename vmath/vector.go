package vmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// Heading2D returns the signed angle in radians from ref to v
// Magnitude is acos of the normalized dot product, sign follows the 2D cross product
// Zero-length input yields 0 so callers never rotate by NaN
func Heading2D(ref, v r2.Point) float64 {
	nr, nv := ref.Norm(), v.Norm()
	if nr == 0 || nv == 0 {
		return 0
	}
	angle := SafeAcos(ref.Dot(v) / (nr * nv))
	if ref.Cross(v) < 0 {
		return -angle
	}
	return angle
}

// FromPolar2D builds a vector of length r at angle a from +X
func FromPolar2D(r, a float64) r2.Point {
	return r2.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
}
