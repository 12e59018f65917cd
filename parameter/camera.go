package parameter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera animation timing
const (
	// CameraTimeScale converts clock seconds into camera animation time
	CameraTimeScale = 1.0 / 1.5

	// CameraLoopDuration is the camera animation cycle in camera time units
	CameraLoopDuration = 30.0

	// POVSweep is the full POV wiggle range in radians
	POVSweep = math.Pi / 2
)

// Aerial orbit around the island
var (
	AerialRadiusX = 30.0
	AerialRadiusY = -20.0
	AerialHeight  = 10.0
	AerialTarget  = mgl64.Vec3{0, 2, 10}

	// AerialStaticEye is the fixed aerial eye when animation is off
	AerialStaticEye = mgl64.Vec3{30, -20, 10}
)

// Fisherman point of view
var (
	POVBaseX     = 5.0
	POVAmplitude = 5.0
	POVEyeY      = 10.9
	POVEyeZ      = 6.0
	POVTarget    = mgl64.Vec3{-3, -5, 10}

	// POVStaticEye is the fixed fisherman eye when animation is off
	POVStaticEye = mgl64.Vec3{5, 10.9, 6}
)

// CameraOrbitStep is the free-look yaw per key press in static modes, radians
const CameraOrbitStep = math.Pi / 36

// CameraUp is the world up vector, the scene is Z-up
var CameraUp = mgl64.Vec3{0, 0, 1}

// Camera eye/target smoothing
const (
	// CameraSpringFrequency is the harmonica angular frequency
	CameraSpringFrequency = 6.0

	// CameraSpringDamping of 1 is critically damped, no overshoot
	CameraSpringDamping = 1.0
)

// Projection
const (
	CameraFOV  = math.Pi / 4
	CameraNear = 1.0
	CameraFar  = 1000.0
)
