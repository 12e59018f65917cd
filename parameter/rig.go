package parameter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fishyman/vmath"
)

// Figure placement
// The figure is modelled Y-up and stood upright in the Z-up world by a quarter turn about X
var (
	FigureTilt   = math.Pi / 2
	FigureOffset = mgl64.Vec3{0, 4, 7}
	FigureScale  = 0.3
)

// FigureAnchor returns the fixed placement of the whole figure
func FigureAnchor() mgl64.Mat4 {
	return vmath.Chain(
		mgl64.HomogRotate3DX(FigureTilt),
		mgl64.Translate3D(FigureOffset.X(), FigureOffset.Y(), FigureOffset.Z()),
		mgl64.Scale3D(FigureScale, FigureScale, FigureScale),
	)
}

// Limb extents shared by arms and legs
var LimbExtent = mgl64.Vec3{0.5, 1.5, 0.5}

// Static limb table values in figure space
var (
	HeadOffset = mgl64.Vec3{0, 2.75, 0.5}
	HeadScale  = 0.8

	TorsoExtent = mgl64.Vec3{1, 2, 0.5}

	LeftArmOffset = mgl64.Vec3{-1.5, 0.5, 0.5}
	LeftArmAngle  = -math.Pi / 8

	LeftLegOffset  = mgl64.Vec3{-0.75, -3, 0}
	RightLegOffset = mgl64.Vec3{0.75, -3, 0}
	LegAngle       = math.Pi / 16
)

// Throwing arm
var (
	// ShoulderOffset places the right arm relative to the figure anchor
	ShoulderOffset = mgl64.Vec3{2, 3.25, 0.25}

	// ShoulderPivot shifts the rotation pivot to the upper end of the arm
	ShoulderPivot = mgl64.Vec3{-0.5, -0.5, 0}
)

const (
	// SwingAmplitude is the peak idle swing angle in radians
	SwingAmplitude = 1.0

	// SwingPeriod divides the swing timer: angle = amplitude * sin(t / period)
	SwingPeriod = 1.0

	// SwingEllipseY and SwingEllipseZ are the pivot ellipse radii in figure units
	SwingEllipseY = 0.1
	SwingEllipseZ = 0.05

	// CockedAngle holds the arm back while the lure is in flight
	CockedAngle = -1.2

	// RestingAngle is where the arm settles after a catch
	RestingAngle = 0.35

	// CaughtDuration is the arm settle time in seconds
	CaughtDuration = 5.0
)

// Rod chain, each segment relative to the previous one
var (
	HandleOffset = mgl64.Vec3{0, 1.3, 0}
	HandleScale  = mgl64.Vec3{1, 0.3, 2}

	ShaftOffset = mgl64.Vec3{0, 0, -4}
	ShaftScale  = mgl64.Vec3{0.4, 0.4, 5}

	LureOffset = mgl64.Vec3{0, -7, 0}
	LureScale  = mgl64.Vec3{1, 1, 0.05}
)

// LureFlightScale is the world scale of the lure while airborne
const LureFlightScale = 0.25
