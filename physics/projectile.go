package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fishyman/parameter"
)

// ProjectileConfig fixes the launch geometry of a projectile
type ProjectileConfig struct {
	Rest         mgl64.Vec3 // launch origin, relative to the hand at cast time
	Heading      mgl64.Vec2 // cast direction on XY, normalized on use
	LateralDrift float64    // constant speed on the axis orthogonal to Heading
	Gravity      float64    // vertical acceleration, negative
	GroundLevel  float64    // contact height
	MinDistance  float64    // launch distance clamp
}

// DefaultProjectileConfig returns parameter-driven geometry for the given rest origin
func DefaultProjectileConfig(rest mgl64.Vec3) ProjectileConfig {
	return ProjectileConfig{
		Rest:         rest,
		Heading:      mgl64.Vec2{parameter.CastHeadingX, parameter.CastHeadingY},
		LateralDrift: parameter.CastLateralDrift,
		Gravity:      parameter.Gravity,
		GroundLevel:  parameter.GroundLevel,
		MinDistance:  parameter.MinLaunchDistance,
	}
}

// Projectile is a single point mass under constant gravity
// Position is never mutated by the simulator while inactive
type Projectile struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Active   bool
	Grounded bool

	cfg     ProjectileConfig
	heading mgl64.Vec2
	lateral mgl64.Vec2
}

// NewProjectile creates an inert projectile resting at cfg.Rest
func NewProjectile(cfg ProjectileConfig) *Projectile {
	heading := mgl64.Vec2{0, 1}
	if cfg.Heading.Len() > 0 {
		heading = cfg.Heading.Normalize()
	}
	return &Projectile{
		Position: cfg.Rest,
		cfg:      cfg,
		heading:  heading,
		lateral:  mgl64.Vec2{-heading.Y(), heading.X()},
	}
}

// Config returns the launch geometry
func (p *Projectile) Config() ProjectileConfig {
	return p.cfg
}

// Launch resets to the rest origin and fires toward a ground crossing at distance along the heading
// Distances below the configured minimum behave exactly like the minimum
func (p *Projectile) Launch(distance, angle float64) {
	if distance < p.cfg.MinDistance {
		distance = p.cfg.MinDistance
	}

	height := p.cfg.Rest.Z() - p.cfg.GroundLevel
	horizontal, vertical := LaunchVelocity(distance, angle, height, p.cfg.Gravity)

	along := p.heading.Mul(horizontal)
	drift := p.lateral.Mul(p.cfg.LateralDrift)

	p.Position = p.cfg.Rest
	p.Velocity = mgl64.Vec3{along.X() + drift.X(), along.Y() + drift.Y(), vertical}
	p.Active = true
	p.Grounded = false
}

// Tick integrates one step of flight, returns true on the step that touches ground
// Ground contact zeroes velocity but leaves Active set: the projectile stays frozen at or below
// the ground until the next Launch or Catch
func (p *Projectile) Tick(dt float64) bool {
	if !p.Active || p.Grounded || dt <= 0 {
		return false
	}

	g := p.cfg.Gravity
	vz := p.Velocity.Z()

	p.Position = mgl64.Vec3{
		p.Position.X() + p.Velocity.X()*dt,
		p.Position.Y() + p.Velocity.Y()*dt,
		p.Position.Z() + vz*dt + 0.5*g*dt*dt,
	}
	p.Velocity[2] = vz + g*dt

	if p.Position.Z() <= p.cfg.GroundLevel {
		p.Velocity = mgl64.Vec3{}
		p.Grounded = true
		return true
	}
	return false
}

// SetRest moves the launch origin used by the next Launch or Catch
// An inactive projectile is moved there at once, one in flight is left alone
func (p *Projectile) SetRest(rest mgl64.Vec3) {
	p.cfg.Rest = rest
	if !p.Active {
		p.Position = rest
	}
}

// Catch returns the projectile to rest on the rod
func (p *Projectile) Catch() {
	p.Position = p.cfg.Rest
	p.Velocity = mgl64.Vec3{}
	p.Active = false
	p.Grounded = false
}

// Travel is the horizontal displacement from the rest origin along the cast heading
func (p *Projectile) Travel() float64 {
	d := p.Position.Sub(p.cfg.Rest)
	return mgl64.Vec2{d.X(), d.Y()}.Dot(p.heading)
}

// AtGround reports whether the projectile is at or below the contact height
func (p *Projectile) AtGround() bool {
	return p.Position.Z() <= p.cfg.GroundLevel
}

// LaunchVelocity solves the launch speed whose parabola, starting height above the ground,
// crosses ground level after exactly distance horizontally
// v² = |g|·d² / (2·cos²θ·(h + d·tanθ))
// Returns horizontal and vertical speed components
func LaunchVelocity(distance, angle, height, gravity float64) (horizontal, vertical float64) {
	g := math.Abs(gravity)
	cos := math.Cos(angle)
	if g == 0 || cos < 1e-9 {
		return distance, 0
	}

	denom := 2 * cos * cos * (height + distance*math.Tan(angle))
	if denom <= 0 {
		// Origin at or below ground with a flat or downward cast, nothing to solve
		return distance, 0
	}

	speed := math.Sqrt(g * distance * distance / denom)
	return speed * cos, speed * math.Sin(angle)
}
