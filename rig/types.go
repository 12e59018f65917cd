package rig

import "github.com/go-gl/mathgl/mgl64"

// Part identifies one rigid body of the figure or its rod
type Part int

const (
	PartHead Part = iota
	PartTorso
	PartLeftArm
	PartRightArm
	PartLeftLeg
	PartRightLeg
	PartRodHandle
	PartRodShaft
	PartLure
	PartCount
)

// ParentAnchor marks a joint composed directly onto the figure anchor
const ParentAnchor Part = -1

var partNames = [PartCount]string{
	"head", "torso", "left-arm", "right-arm", "left-leg", "right-leg", "rod-handle", "rod-shaft", "lure",
}

func (p Part) String() string {
	if p < 0 || p >= PartCount {
		return "anchor"
	}
	return partNames[p]
}

// State is the throwing-arm behavior mode, exactly one is active
type State int

const (
	StateIdle State = iota
	StateSwinging
	StateLaunching
	StateCaught
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwinging:
		return "swinging"
	case StateLaunching:
		return "launching"
	case StateCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// Behavior is the pose input owned by the frame driver
type Behavior struct {
	State State
	// Since is the clock time State was entered
	Since float64
	// SwingTime is the oscillation timer, advanced only while Swinging
	SwingTime float64
}

// Joint is one row of the part table
// world(part) = world(Parent) · T(Offset) · R(Angle, Axis) · S(Scale)
type Joint struct {
	Parent Part
	Offset mgl64.Vec3
	Angle  float64
	Axis   mgl64.Vec3
	Scale  mgl64.Vec3
}

// ArmConfig tunes the throwing arm
type ArmConfig struct {
	Amplitude float64 // peak swing angle, radians
	Period    float64 // swing timer divisor
	EllipseY  float64 // pivot ellipse radius on figure Y
	EllipseZ  float64 // pivot ellipse radius on figure Z
	Cocked    float64 // Launching angle
	Resting   float64 // Caught end angle
	Duration  float64 // Caught settle time, seconds
}

// Pose holds world transforms for every part of one frame
type Pose [PartCount]mgl64.Mat4

// Transform returns the world transform of part
func (p Pose) Transform(part Part) mgl64.Mat4 {
	return p[part]
}

// Origin returns the world position of part's local origin
func (p Pose) Origin(part Part) mgl64.Vec3 {
	return p[part].Col(3).Vec3()
}
