package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name              string
		elapsed, duration float64
		want              float64
	}{
		{"start", 0, 5, 0},
		{"half", 2.5, 5, 0.5},
		{"done", 5, 5, 1},
		{"past", 9, 5, 1},
		{"negative elapsed", -1, 5, 0},
		{"zero duration", 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.elapsed, tt.duration), 1e-12)
		})
	}
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 1.0, Wrap(31, 30), 1e-12)
	assert.InDelta(t, 29.0, Wrap(-1, 30), 1e-12)
	assert.Equal(t, 0.0, Wrap(5, 0))
}

func TestSafeAcosOutOfDomain(t *testing.T) {
	assert.Equal(t, 0.0, SafeAcos(1.0000000001))
	assert.InDelta(t, math.Pi, SafeAcos(-1.0000000001), 1e-12)
}

func TestHeading2D(t *testing.T) {
	ref := r2.Point{X: 1}
	tests := []struct {
		name string
		v    r2.Point
		want float64
	}{
		{"aligned", r2.Point{X: 2}, 0},
		{"left quarter", r2.Point{Y: 1}, math.Pi / 2},
		{"right quarter", r2.Point{Y: -3}, -math.Pi / 2},
		{"opposite", r2.Point{X: -1}, math.Pi},
		{"zero vector", r2.Point{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading2D(ref, tt.v)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTRSOrder(t *testing.T) {
	// Scale first, then rotate a quarter turn about Z, then translate
	m := TRS(mgl64.Vec3{1, 2, 3}, math.Pi/2, AxisZ, mgl64.Vec3{2, 1, 1})
	got := mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, m)
	assert.InDelta(t, 1.0, got.X(), 1e-9)
	assert.InDelta(t, 4.0, got.Y(), 1e-9)
	assert.InDelta(t, 3.0, got.Z(), 1e-9)
}

func TestTRSZeroAxisSkipsRotation(t *testing.T) {
	m := TRS(mgl64.Vec3{}, 1.0, mgl64.Vec3{}, Uniform(1))
	ident := mgl64.Ident4()
	assert.InDeltaSlice(t, ident[:], m[:], 1e-12)
}

func TestChainAndOrigin(t *testing.T) {
	a := mgl64.Translate3D(1, 0, 0)
	b := mgl64.Scale3D(2, 2, 2)
	c := mgl64.Translate3D(0, 1, 0)
	m := Chain(a, b, c)
	// c moves by 1 in a space scaled by 2, then a adds 1 on X
	assert.InDelta(t, 1.0, Origin(m).X(), 1e-12)
	assert.InDelta(t, 2.0, Origin(m).Y(), 1e-12)
	ident, empty := mgl64.Ident4(), Chain()
	assert.InDeltaSlice(t, ident[:], empty[:], 1e-12)
}

func TestHorizontalDistanceIgnoresHeight(t *testing.T) {
	d := HorizontalDistance(mgl64.Vec3{0, 0, 100}, mgl64.Vec3{3, 4, -5})
	assert.InDelta(t, 5.0, d, 1e-12)
}

func TestSegmentSpansEndpoints(t *testing.T) {
	cases := [][2]mgl64.Vec3{
		{{1, 2, 3}, {1, 2, 7}},
		{{0, 0, 0}, {3, -4, 12}},
		{{0, 0, 5}, {0, 0, -5}},
	}
	for _, c := range cases {
		m := Segment(c[0], c[1], 0.05)
		top := mgl64.TransformCoordinate(mgl64.Vec3{0, 0, 1}, m)
		bottom := mgl64.TransformCoordinate(mgl64.Vec3{0, 0, -1}, m)
		assert.InDeltaSlice(t, c[1][:], top[:], 1e-9, "top %v want %v", top, c[1])
		assert.InDeltaSlice(t, c[0][:], bottom[:], 1e-9, "bottom %v want %v", bottom, c[0])
	}

	point := Segment(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1}, 0.05)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, Origin(point))
}
