package engine

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/lixenwraith/fishyman/parameter"
	"github.com/lixenwraith/fishyman/vmath"
)

// CameraMode selects the camera rig
type CameraMode int

const (
	CameraAerial CameraMode = iota // orbit around the island
	CameraPOV                      // over the fisherman's shoulder
)

func (m CameraMode) String() string {
	switch m {
	case CameraAerial:
		return "aerial"
	case CameraPOV:
		return "pov"
	default:
		return "unknown"
	}
}

// ParseCameraMode accepts the String form, case-insensitive
func ParseCameraMode(s string) (CameraMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aerial", "":
		return CameraAerial, nil
	case "pov":
		return CameraPOV, nil
	default:
		return CameraAerial, errors.Errorf("unknown camera mode %q", s)
	}
}

// Camera is the mode state machine {Aerial, POV} × {Animated, Static}
// Animated modes recompute the goal pose every frame from time; static modes place the goal once
// per mode entry (Positioned) and then only free-look moves it
// Eye and Target chase the goal through critically damped springs when smoothing is on
type Camera struct {
	Mode       CameraMode
	Animated   bool
	Positioned bool

	Eye    mgl64.Vec3
	Target mgl64.Vec3

	goalEye    mgl64.Vec3
	goalTarget mgl64.Vec3
	eyeVel     mgl64.Vec3
	targetVel  mgl64.Vec3

	smoothing bool
	settled   bool
	frequency float64
	damping   float64
	spring    harmonica.Spring
	springDt  float64
}

// NewCamera creates an unplaced camera, the first Update snaps it to its goal
func NewCamera(mode CameraMode, animated bool) *Camera {
	return &Camera{
		Mode:      mode,
		Animated:  animated,
		frequency: parameter.CameraSpringFrequency,
		damping:   parameter.CameraSpringDamping,
	}
}

// SetSmoothing enables spring smoothing; a non-positive frequency disables it
func (c *Camera) SetSmoothing(frequency, damping float64) {
	c.smoothing = frequency > 0
	c.frequency = frequency
	c.damping = damping
	c.springDt = 0
}

// SwitchMode toggles Aerial and POV
func (c *Camera) SwitchMode() {
	if c.Mode == CameraAerial {
		c.Mode = CameraPOV
	} else {
		c.Mode = CameraAerial
	}
	c.Positioned = false
}

// ToggleAnimated flips between animated and static placement
func (c *Camera) ToggleAnimated() {
	c.Animated = !c.Animated
	c.Positioned = false
}

// Orbit yaws the static goal eye about the world up axis through the target
// Ignored while animated, the next frame would overwrite it
func (c *Camera) Orbit(angle float64) {
	if c.Animated || !c.Positioned {
		return
	}
	rel := c.goalEye.Sub(c.goalTarget)
	rot := mgl64.HomogRotate3D(angle, parameter.CameraUp)
	c.goalEye = c.goalTarget.Add(mgl64.TransformNormal(rel, rot))
}

// Update advances the goal pose for time t and moves Eye/Target toward it
func (c *Camera) Update(t, dt float64) {
	switch {
	case c.Animated:
		c.goalEye, c.goalTarget = AnimatedPose(c.Mode, t)
	case !c.Positioned:
		c.goalEye, c.goalTarget = StaticPose(c.Mode)
		c.Positioned = true
	}
	c.follow(dt)
}

// Goal returns the pose the camera is moving toward
func (c *Camera) Goal() (eye, target mgl64.Vec3) {
	return c.goalEye, c.goalTarget
}

func (c *Camera) follow(dt float64) {
	if !c.smoothing || !c.settled {
		c.Eye, c.Target = c.goalEye, c.goalTarget
		c.eyeVel, c.targetVel = mgl64.Vec3{}, mgl64.Vec3{}
		c.settled = true
		return
	}
	if dt <= 0 {
		return
	}
	if dt != c.springDt {
		c.spring = harmonica.NewSpring(dt, c.frequency, c.damping)
		c.springDt = dt
	}
	for i := 0; i < 3; i++ {
		c.Eye[i], c.eyeVel[i] = c.spring.Update(c.Eye[i], c.eyeVel[i], c.goalEye[i])
		c.Target[i], c.targetVel[i] = c.spring.Update(c.Target[i], c.targetVel[i], c.goalTarget[i])
	}
}

// View returns the look-at matrix for the current eye and target
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, parameter.CameraUp)
}

// Projection returns the perspective matrix for aspect (width/height)
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(parameter.CameraFOV, aspect, parameter.CameraNear, parameter.CameraFar)
}

// AnimatedPose is the time-driven goal for mode
func AnimatedPose(mode CameraMode, t float64) (eye, target mgl64.Vec3) {
	loop := vmath.Wrap(t*parameter.CameraTimeScale, parameter.CameraLoopDuration) / parameter.CameraLoopDuration
	if mode == CameraPOV {
		a := loop * parameter.POVSweep
		return mgl64.Vec3{
			parameter.POVBaseX + parameter.POVAmplitude*math.Cos(a),
			parameter.POVEyeY,
			parameter.POVEyeZ,
		}, parameter.POVTarget
	}
	a := loop * 2 * math.Pi
	return mgl64.Vec3{
		parameter.AerialRadiusX * math.Cos(a),
		parameter.AerialRadiusY * math.Sin(a),
		parameter.AerialHeight,
	}, parameter.AerialTarget
}

// StaticPose is the fixed goal for mode
func StaticPose(mode CameraMode) (eye, target mgl64.Vec3) {
	if mode == CameraPOV {
		return parameter.POVStaticEye, parameter.POVTarget
	}
	return parameter.AerialStaticEye, parameter.AerialTarget
}
