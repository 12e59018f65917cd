package parameter

import "math"

// Projectile kinematics
const (
	// Gravity is the constant vertical acceleration in units/s²
	Gravity = -9.8

	// GroundLevel is the water surface height, lure contact happens at or below it
	GroundLevel = 2.0

	// MinLaunchDistance clamps degenerate near-zero casts
	MinLaunchDistance = 3.0

	// MaxLaunchDistance bounds AdjustDesiredDistance
	MaxLaunchDistance = 60.0

	// DefaultLaunchDistance is the desired horizontal distance at startup
	DefaultLaunchDistance = 15.0

	// DefaultLaunchAngle is the elevation of a cast in radians
	DefaultLaunchAngle = math.Pi / 4

	// DistanceStep is the AdjustDesiredDistance increment bound to +/-
	DistanceStep = 1.0
)

// Cast direction on the XY plane, away from the dock toward open water
var (
	CastHeadingX = 0.0
	CastHeadingY = 1.0
)

// CastLateralDrift is the constant speed on the axis orthogonal to the cast heading
// Zero keeps the flight in a single vertical plane
const CastLateralDrift = 0.0
