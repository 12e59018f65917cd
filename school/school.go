package school

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fishyman/parameter"
	"github.com/lixenwraith/fishyman/vmath"
)

// Config tunes the population
type Config struct {
	Extent      float64 // half-width of the square spawn region
	Height      float64 // fixed swim height
	SpeedScale  float64
	RetargetMin float64
	RetargetMax float64
	GroundLevel float64 // TryCatch is gated on the projectile being at or below this
	MaxAttempts int     // rejection sampling bound per actor
}

// DefaultConfig returns the parameter-driven tuning
func DefaultConfig() Config {
	return Config{
		Extent:      parameter.SpawnExtent,
		Height:      parameter.SwimHeight,
		SpeedScale:  parameter.SwimSpeedScale,
		RetargetMin: parameter.RetargetMin,
		RetargetMax: parameter.RetargetMax,
		GroundLevel: parameter.GroundLevel,
		MaxAttempts: parameter.SpawnMaxAttempts,
	}
}

// referenceAxis is the zero-facing direction of the fish mesh
var referenceAxis = r2.Point{X: 1}

// Actor is one wandering fish
type Actor struct {
	ID         int
	Position   r2.Point
	Height     float64
	Heading    r2.Point
	RetargetIn float64 // seconds until the next heading draw
	Facing     float64 // signed angle from the reference axis to Heading
	Caught     bool
	Trophy     int // rack slot, valid when Caught
	Color      colorful.Color
}

// World returns the 3D position of the actor
func (a *Actor) World() mgl64.Vec3 {
	return mgl64.Vec3{a.Position.X, a.Position.Y, a.Height}
}

// Population is a fixed-size set of actors
// All randomness comes from the injected generator
type Population struct {
	cfg    Config
	rng    *rand.Rand
	actors []Actor
	caught int
}

// New creates an empty population
func New(cfg Config, rng *rand.Rand) *Population {
	return &Population{cfg: cfg, rng: rng}
}

// Spawn replaces the population with count actors drawn uniformly from the square region
// Draws whose x or y falls within exclusionRadius of the origin are resampled
func (p *Population) Spawn(count int, exclusionRadius float64) {
	p.reset(count)
	for i := 0; i < count; i++ {
		p.add(p.samplePosition(exclusionRadius))
	}
}

// Place replaces the population with actors at fixed positions
func (p *Population) Place(positions ...r2.Point) {
	p.reset(len(positions))
	for _, pos := range positions {
		p.add(pos)
	}
}

func (p *Population) reset(capacity int) {
	p.actors = make([]Actor, 0, capacity)
	p.caught = 0
}

func (p *Population) add(pos r2.Point) {
	p.actors = append(p.actors, Actor{
		ID:       len(p.actors),
		Position: pos,
		Height:   p.cfg.Height,
		Trophy:   -1,
		Color:    p.randomColor(),
	})
}

func (p *Population) samplePosition(exclusion float64) r2.Point {
	region := r2.RectFromPoints(
		r2.Point{X: -p.cfg.Extent, Y: -p.cfg.Extent},
		r2.Point{X: p.cfg.Extent, Y: p.cfg.Extent},
	)
	attempts := p.cfg.MaxAttempts
	if attempts <= 0 {
		attempts = parameter.SpawnMaxAttempts
	}
	for attempt := 0; attempt < attempts; attempt++ {
		pos := r2.Point{
			X: p.uniform(region.X.Lo, region.X.Hi),
			Y: p.uniform(region.Y.Lo, region.Y.Hi),
		}
		if !excluded(pos, exclusion) {
			return pos
		}
	}
	// Exclusion covers the whole region, settle on the far corner
	return region.Hi()
}

func excluded(pos r2.Point, radius float64) bool {
	return math.Abs(pos.X) < radius || math.Abs(pos.Y) < radius
}

// randomColor draws a saturated render-only hue
func (p *Population) randomColor() colorful.Color {
	return colorful.Hsv(p.uniform(0, 360), p.uniform(0.6, 0.9), p.uniform(0.7, 1.0))
}

func (p *Population) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

// Tick advances every free actor by dt seconds
// Re-targeting runs on a per-actor countdown so now is only part of the frame contract
// A non-positive dt leaves all state untouched
func (p *Population) Tick(dt, now float64) {
	if dt <= 0 {
		return
	}
	for i := range p.actors {
		a := &p.actors[i]
		if a.Caught {
			continue
		}

		a.RetargetIn -= dt
		if a.RetargetIn <= 0 {
			a.Heading = r2.Point{X: p.uniform(-1, 1), Y: p.uniform(-1, 1)}
			a.RetargetIn = p.uniform(p.cfg.RetargetMin, p.cfg.RetargetMax)
		}

		a.Position = a.Position.Add(a.Heading.Mul(dt * p.cfg.SpeedScale))
		a.Facing = vmath.Heading2D(referenceAxis, a.Heading)
	}
}

// TryCatch hooks the first free actor within radius of the projectile, horizontally
// Only evaluated once the projectile is at or below ground level; at most one actor per call
func (p *Population) TryCatch(projectile mgl64.Vec3, radius float64) (int, bool) {
	if projectile.Z() > p.cfg.GroundLevel {
		return -1, false
	}
	hook := r2.Point{X: projectile.X(), Y: projectile.Y()}
	for i := range p.actors {
		a := &p.actors[i]
		if a.Caught {
			continue
		}
		// Planar distance: actors swim at a fixed height above the grounded lure
		if a.Position.Sub(hook).Norm() <= radius {
			a.Caught = true
			a.Position = hook
			a.Trophy = p.caught
			p.caught++
			return a.ID, true
		}
	}
	return -1, false
}

// Actors returns the live actor slice, callers must not append
func (p *Population) Actors() []Actor {
	return p.actors
}

// Actor returns the actor with id
func (p *Population) Actor(id int) (Actor, bool) {
	if id < 0 || id >= len(p.actors) {
		return Actor{}, false
	}
	return p.actors[id], true
}

// CaughtCount is the number of actors on the trophy rack
func (p *Population) CaughtCount() int {
	return p.caught
}

// Len is the population size
func (p *Population) Len() int {
	return len(p.actors)
}

// TrophyPosition returns the rack location of slot
func TrophyPosition(slot int) mgl64.Vec3 {
	return mgl64.Vec3{
		parameter.TrophyOriginX + float64(slot)*parameter.TrophySpacing,
		parameter.TrophyOriginY,
		parameter.TrophyOriginZ,
	}
}
