package parameter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Backdrop placement in world space
var (
	SkyScale = 200.0

	OceanOffset = mgl64.Vec3{0, 0, 2}
	OceanScale  = mgl64.Vec3{300, 300, 1}
	// OceanDrift is the ocean roll rate about X in radians per second
	OceanDrift = math.Pi / 100

	SandOffset = mgl64.Vec3{2, 2, 2}
	SandScale  = mgl64.Vec3{20, 20, 3}

	TreeOffset = mgl64.Vec3{5, 5, 10}
	TreeScale  = 2.0
	TreeTilt   = math.Pi / 2
)

// Light direction for flat shading, world space, pointing toward the light
var LightDirection = mgl64.Vec3{-3, -18, 90}

// Ambient floor used by the software rasterizer
const AmbientLight = 0.45

// Fishing line drawn between the rod and a lure in flight
const LineThickness = 0.03

// Ocean shimmer: ambient = OceanShimmerBase + OceanShimmerAmplitude·sin(OceanShimmerRate·t)
const (
	OceanShimmerBase      = 0.7
	OceanShimmerAmplitude = 0.1
	OceanShimmerRate      = 1.3
)
