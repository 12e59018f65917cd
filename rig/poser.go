package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fishyman/parameter"
	"github.com/lixenwraith/fishyman/vmath"
)

// Poser computes the per-frame world transform of every part
// Pose output depends only on (time, behavior) and the tuning
type Poser struct {
	anchor mgl64.Mat4
	joints [PartCount]Joint
	arm    ArmConfig

	// scratch table, the throwing arm row is rewritten every frame
	frame [PartCount]Joint
}

// NewPoser creates a poser over the default part table
func NewPoser(anchor mgl64.Mat4, arm ArmConfig) *Poser {
	return &Poser{
		anchor: anchor,
		joints: DefaultJoints(),
		arm:    arm,
	}
}

// DefaultArm returns the throwing arm tuning from parameter
func DefaultArm() ArmConfig {
	return ArmConfig{
		Amplitude: parameter.SwingAmplitude,
		Period:    parameter.SwingPeriod,
		EllipseY:  parameter.SwingEllipseY,
		EllipseZ:  parameter.SwingEllipseZ,
		Cocked:    parameter.CockedAngle,
		Resting:   parameter.RestingAngle,
		Duration:  parameter.CaughtDuration,
	}
}

// DefaultJoints returns the part table, parents listed before children
func DefaultJoints() [PartCount]Joint {
	var j [PartCount]Joint
	j[PartHead] = Joint{Parent: ParentAnchor, Offset: parameter.HeadOffset, Scale: vmath.Uniform(parameter.HeadScale)}
	j[PartTorso] = Joint{Parent: ParentAnchor, Scale: parameter.TorsoExtent}
	j[PartLeftArm] = Joint{Parent: ParentAnchor, Offset: parameter.LeftArmOffset, Angle: parameter.LeftArmAngle, Axis: vmath.AxisX, Scale: parameter.LimbExtent}
	j[PartRightArm] = Joint{Parent: ParentAnchor, Offset: parameter.ShoulderOffset.Add(parameter.ShoulderPivot), Axis: vmath.AxisX, Scale: parameter.LimbExtent}
	j[PartLeftLeg] = Joint{Parent: ParentAnchor, Offset: parameter.LeftLegOffset, Angle: parameter.LegAngle, Axis: vmath.AxisX, Scale: parameter.LimbExtent}
	j[PartRightLeg] = Joint{Parent: ParentAnchor, Offset: parameter.RightLegOffset, Angle: parameter.LegAngle, Axis: vmath.AxisX, Scale: parameter.LimbExtent}
	j[PartRodHandle] = Joint{Parent: PartRightArm, Offset: parameter.HandleOffset, Scale: parameter.HandleScale}
	j[PartRodShaft] = Joint{Parent: PartRodHandle, Offset: parameter.ShaftOffset, Scale: parameter.ShaftScale}
	j[PartLure] = Joint{Parent: PartRodShaft, Offset: parameter.LureOffset, Scale: parameter.LureScale}
	return j
}

// SetArm replaces the throwing arm tuning, used on config reload
func (p *Poser) SetArm(arm ArmConfig) {
	p.arm = arm
}

// Arm returns the current throwing arm tuning
func (p *Poser) Arm() ArmConfig {
	return p.arm
}

// Pose computes every part transform for time t
func (p *Poser) Pose(t float64, b Behavior) Pose {
	p.frame = p.joints

	angle, pivot := p.throwingArm(t, b)
	arm := &p.frame[PartRightArm]
	arm.Offset = parameter.ShoulderOffset.Add(pivot)
	arm.Angle = angle

	var out Pose
	Compose(p.anchor, p.frame[:], out[:])
	return out
}

// ArmAngle returns the throwing arm rotation for time t
func (p *Poser) ArmAngle(t float64, b Behavior) float64 {
	angle, _ := p.throwingArm(t, b)
	return angle
}

// throwingArm resolves the behavior-dependent rotation and pivot of the right arm
func (p *Poser) throwingArm(t float64, b Behavior) (float64, mgl64.Vec3) {
	switch b.State {
	case StateLaunching:
		return p.arm.Cocked, parameter.ShoulderPivot

	case StateCaught:
		progress := vmath.Progress(t-b.Since, p.arm.Duration)
		return vmath.Lerp(p.arm.Cocked, p.arm.Resting, progress), parameter.ShoulderPivot

	default:
		// Idle and Swinging share the formula, Idle simply holds SwingTime still
		period := p.arm.Period
		if period == 0 {
			period = 1
		}
		phase := b.SwingTime / period
		sin, cos := math.Sincos(phase)
		pivot := parameter.ShoulderPivot.Add(mgl64.Vec3{0, p.arm.EllipseY * cos, p.arm.EllipseZ * sin})
		return p.arm.Amplitude * sin, pivot
	}
}

// Compose walks a parent-first joint table and writes world transforms into out
// A joint whose parent is ParentAnchor (or out of range) chains onto anchor
func Compose(anchor mgl64.Mat4, joints []Joint, out []mgl64.Mat4) {
	for i, j := range joints {
		parent := anchor
		if j.Parent >= 0 && int(j.Parent) < i {
			parent = out[j.Parent]
		}
		out[i] = parent.Mul4(vmath.TRS(j.Offset, j.Angle, j.Axis, j.Scale))
	}
}
