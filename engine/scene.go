package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fishyman/parameter"
	"github.com/lixenwraith/fishyman/physics"
	"github.com/lixenwraith/fishyman/render"
	"github.com/lixenwraith/fishyman/rig"
	"github.com/lixenwraith/fishyman/school"
	"github.com/lixenwraith/fishyman/vmath"
)

// SceneConfig collects everything needed to build a Scene
type SceneConfig struct {
	FishCount       int
	ExclusionRadius float64
	CatchRadius     float64

	DesiredDistance float64
	LaunchAngle     float64
	MaxDistance     float64
	Gravity         float64

	CameraMode CameraMode
	Animated   bool
	Smoothing  bool

	Arm    rig.ArmConfig
	School school.Config
}

// DefaultSceneConfig returns parameter-driven settings
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		FishCount:       parameter.FishCount,
		ExclusionRadius: parameter.ExclusionRadius,
		CatchRadius:     parameter.CatchRadius,
		DesiredDistance: parameter.DefaultLaunchDistance,
		LaunchAngle:     parameter.DefaultLaunchAngle,
		MaxDistance:     parameter.MaxLaunchDistance,
		Gravity:         parameter.Gravity,
		CameraMode:      CameraAerial,
		Animated:        true,
		Smoothing:       true,
		Arm:             rig.DefaultArm(),
		School:          school.DefaultConfig(),
	}
}

// Scene owns the simulation state of one island and drives it frame by frame
// Update, Dispatch and Render must be called from the same goroutine
type Scene struct {
	cfg SceneConfig

	poser      *rig.Poser
	behavior   rig.Behavior
	projectile *physics.Projectile
	population *school.Population
	camera     *Camera
	materials  *render.MaterialTable
	listeners  Listeners

	fishMaterials []render.MaterialID
	ocean         mgl64.Mat4
	desired       float64
	now           float64
}

// NewScene builds the rig, spawns the population from rng and places the lure at rest
func NewScene(cfg SceneConfig, rng *rand.Rand) *Scene {
	poser := rig.NewPoser(parameter.FigureAnchor(), cfg.Arm)

	pcfg := physics.DefaultProjectileConfig(castOrigin(poser))
	pcfg.Gravity = cfg.Gravity

	population := school.New(cfg.School, rng)
	population.Spawn(cfg.FishCount, cfg.ExclusionRadius)

	camera := NewCamera(cfg.CameraMode, cfg.Animated)
	if cfg.Smoothing {
		camera.SetSmoothing(parameter.CameraSpringFrequency, parameter.CameraSpringDamping)
	}

	state := rig.StateIdle
	if cfg.Animated {
		state = rig.StateSwinging
	}

	s := &Scene{
		cfg:        cfg,
		poser:      poser,
		behavior:   rig.Behavior{State: state},
		projectile: physics.NewProjectile(pcfg),
		population: population,
		camera:     camera,
		materials:  render.NewMaterialTable(),
		ocean:      vmath.TRS(parameter.OceanOffset, 0, vmath.AxisX, parameter.OceanScale),
	}
	s.desired = s.clampDistance(cfg.DesiredDistance)
	return s
}

// castOrigin is where the lure hangs with the arm cocked
func castOrigin(poser *rig.Poser) mgl64.Vec3 {
	return poser.Pose(0, rig.Behavior{State: rig.StateLaunching}).Origin(rig.PartLure)
}

// AddListener registers l for launch, splash and catch events
func (s *Scene) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Update advances the scene to time t, dt seconds after the previous frame
// Order: swing timer, projectile, catch check, population, camera, ocean
func (s *Scene) Update(t, dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.now = t

	if s.behavior.State == rig.StateSwinging {
		s.behavior.SwingTime += dt
	}

	if s.projectile.Tick(dt) {
		s.listeners.OnSplash(s.projectile.Position)
	}

	if s.projectile.Active && s.projectile.Grounded {
		if id, ok := s.population.TryCatch(s.projectile.Position, s.cfg.CatchRadius); ok {
			at := s.projectile.Position
			s.projectile.Catch()
			s.setState(rig.StateCaught)
			s.listeners.OnCatch(id, at)
		}
	}

	s.population.Tick(dt, t)
	s.camera.Update(t, dt)

	if dt > 0 {
		s.ocean = s.ocean.Mul4(mgl64.HomogRotate3DX(parameter.OceanDrift * dt))
	}
	shimmer := parameter.OceanShimmerBase +
		parameter.OceanShimmerAmplitude*math.Sin(parameter.OceanShimmerRate*t*parameter.CameraTimeScale)
	s.materials.SetAmbient(render.MaterialOcean, shimmer)
}

// Dispatch applies a user command synchronously
func (s *Scene) Dispatch(cmd Command) {
	switch c := cmd.(type) {
	case ToggleAnimation:
		s.camera.ToggleAnimated()
		switch s.behavior.State {
		case rig.StateIdle:
			s.behavior.State = rig.StateSwinging
		case rig.StateSwinging:
			s.behavior.State = rig.StateIdle
		}

	case SwitchCameraMode:
		s.camera.SwitchMode()

	case LaunchProjectile:
		distance := math.Max(c.Distance, s.projectile.Config().MinDistance)
		s.projectile.Launch(distance, c.Angle)
		s.setState(rig.StateLaunching)
		s.listeners.OnLaunch(distance, c.Angle)

	case ReturnToIdle:
		s.setState(rig.StateSwinging)

	case AdjustDesiredDistance:
		s.desired = s.clampDistance(s.desired + c.Delta)

	case OrbitCamera:
		s.camera.Orbit(c.Angle)
	}
}

// LaunchDesired casts with the current desired distance and configured angle
func (s *Scene) LaunchDesired() {
	s.Dispatch(LaunchProjectile{Distance: s.desired, Angle: s.cfg.LaunchAngle})
}

// Retune applies tuning-only settings from a reloaded configuration
// Population, seed and camera settings are left as they are
func (s *Scene) Retune(cfg SceneConfig) {
	s.cfg.Arm = cfg.Arm
	s.cfg.CatchRadius = cfg.CatchRadius
	s.cfg.LaunchAngle = cfg.LaunchAngle
	s.cfg.MaxDistance = cfg.MaxDistance
	s.poser.SetArm(cfg.Arm)
	s.projectile.SetRest(castOrigin(s.poser))
	s.desired = s.clampDistance(s.desired)
}

func (s *Scene) setState(state rig.State) {
	s.behavior.State = state
	s.behavior.Since = s.now
}

func (s *Scene) clampDistance(d float64) float64 {
	return vmath.Clamp(d, parameter.MinLaunchDistance, math.Max(s.cfg.MaxDistance, parameter.MinLaunchDistance))
}

// Status is a read-only snapshot for HUDs and logs
type Status struct {
	Time         float64
	State        rig.State
	CameraMode   CameraMode
	Animated     bool
	Desired      float64
	InFlight     bool
	Grounded     bool
	Travel       float64
	Caught       int
	Population   int
	ArmAngle     float64
	LurePosition mgl64.Vec3
}

// Status reports the current scene state
func (s *Scene) Status() Status {
	return Status{
		Time:         s.now,
		State:        s.behavior.State,
		CameraMode:   s.camera.Mode,
		Animated:     s.camera.Animated,
		Desired:      s.desired,
		InFlight:     s.projectile.Active && !s.projectile.Grounded,
		Grounded:     s.projectile.Grounded,
		Travel:       s.projectile.Travel(),
		Caught:       s.population.CaughtCount(),
		Population:   s.population.Len(),
		ArmAngle:     s.poser.ArmAngle(s.now, s.behavior),
		LurePosition: s.projectile.Position,
	}
}

// Lines formats the status as HUD rows
func (st Status) Lines() []string {
	camera := st.CameraMode.String()
	if st.Animated {
		camera += " animated"
	} else {
		camera += " static"
	}
	lure := "rest"
	switch {
	case st.InFlight:
		lure = fmt.Sprintf("flight %.1f", st.Travel)
	case st.Grounded:
		lure = fmt.Sprintf("down %.1f,%.1f", st.LurePosition.X(), st.LurePosition.Y())
	}
	return []string{
		fmt.Sprintf("t %.1fs  %s  cam %s  cast %.0f", st.Time, st.State, camera, st.Desired),
		fmt.Sprintf("lure %s  caught %d/%d", lure, st.Caught, st.Population),
	}
}

// Behavior returns the rig behavior state
func (s *Scene) Behavior() rig.Behavior { return s.behavior }

// Projectile returns the lure simulator
func (s *Scene) Projectile() *physics.Projectile { return s.projectile }

// Population returns the fish
func (s *Scene) Population() *school.Population { return s.population }

// Camera returns the camera state machine
func (s *Scene) Camera() *Camera { return s.camera }

// Materials returns the material table shared with rasterizers
func (s *Scene) Materials() *render.MaterialTable { return s.materials }

// DesiredDistance is the distance LaunchDesired will use
func (s *Scene) DesiredDistance() float64 { return s.desired }

// Pose returns the rig pose for the last Update time
func (s *Scene) Pose() rig.Pose {
	return s.poser.Pose(s.now, s.behavior)
}
