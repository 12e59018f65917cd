package vmath

import "github.com/go-gl/mathgl/mgl64"

// Axis constants
var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// TRS builds T(offset) · R(angle, axis) · S(scale)
// A zero axis or zero angle skips the rotation
func TRS(offset mgl64.Vec3, angle float64, axis, scale mgl64.Vec3) mgl64.Mat4 {
	m := mgl64.Translate3D(offset.X(), offset.Y(), offset.Z())
	if angle != 0 && axis.Len() > 0 {
		m = m.Mul4(mgl64.HomogRotate3D(angle, axis.Normalize()))
	}
	return m.Mul4(mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Chain multiplies left to right: ms[0] · ms[1] · ... · ms[n-1]
func Chain(ms ...mgl64.Mat4) mgl64.Mat4 {
	out := mgl64.Ident4()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}

// Origin returns the translation column, the world position of the local origin
func Origin(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}

// Uniform returns a vector with all components set to s
func Uniform(s float64) mgl64.Vec3 {
	return mgl64.Vec3{s, s, s}
}

// HorizontalDistance is the distance between a and b projected on the XY plane
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return mgl64.Vec2{a.X() - b.X(), a.Y() - b.Y()}.Len()
}

// Segment maps the [-1, 1] unit cube onto a square bar of half-width thickness from a to b
// Coincident endpoints collapse to a point-sized bar at a
func Segment(a, b mgl64.Vec3, thickness float64) mgl64.Mat4 {
	d := b.Sub(a)
	length := d.Len()
	mid := a.Add(d.Mul(0.5))
	m := mgl64.Translate3D(mid.X(), mid.Y(), mid.Z())
	if length > 1e-9 {
		m = m.Mul4(mgl64.QuatBetweenVectors(AxisZ, d.Mul(1/length)).Mat4())
	}
	return m.Mul4(mgl64.Scale3D(thickness, thickness, length/2))
}
