package engine

// Command is a user action applied with Scene.Dispatch
type Command interface {
	command()
}

// ToggleAnimation flips camera animation and pauses or resumes the idle swing
type ToggleAnimation struct{}

// SwitchCameraMode toggles the aerial and POV rigs
type SwitchCameraMode struct{}

// LaunchProjectile casts the lure toward a ground crossing at Distance
type LaunchProjectile struct {
	Distance float64
	Angle    float64 // elevation, radians
}

// ReturnToIdle resumes the idle swing, an airborne or grounded lure is left alone
type ReturnToIdle struct{}

// AdjustDesiredDistance nudges the distance used by LaunchDesired
type AdjustDesiredDistance struct {
	Delta float64
}

// OrbitCamera yaws a static camera around its target
type OrbitCamera struct {
	Angle float64
}

func (ToggleAnimation) command()       {}
func (SwitchCameraMode) command()      {}
func (LaunchProjectile) command()      {}
func (ReturnToIdle) command()          {}
func (AdjustDesiredDistance) command() {}
func (OrbitCamera) command()           {}
