package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDt = 1.0 / 240

func testConfig() ProjectileConfig {
	return ProjectileConfig{
		Rest:        mgl64.Vec3{0.5, -6.5, 4},
		Heading:     mgl64.Vec2{0, 1},
		Gravity:     -9.8,
		GroundLevel: 2,
		MinDistance: 3,
	}
}

// flyUntilGround ticks until contact, returning the number of steps taken
func flyUntilGround(t *testing.T, p *Projectile, dt float64) int {
	t.Helper()
	for step := 1; step < 100000; step++ {
		if p.Tick(dt) {
			return step
		}
	}
	t.Fatal("projectile never reached the ground")
	return 0
}

func TestLandingDistanceMatchesRequest(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		angle    float64
	}{
		{"minimum", 3, math.Pi / 4},
		{"short lob", 8, math.Pi / 4},
		{"flat", 12, math.Pi / 12},
		{"steep", 20, math.Pi / 3},
		{"long", 55, math.Pi / 5},
		{"level throw", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(testConfig())
			p.Launch(tt.distance, tt.angle)
			horizontal := mgl64.Vec2{p.Velocity.X(), p.Velocity.Y()}.Len()

			flyUntilGround(t, p, testDt)

			// Contact is detected on the first step past the crossing, at most one step late
			assert.InDelta(t, tt.distance, p.Travel(), horizontal*testDt+1e-6)
		})
	}
}

func TestShortDistanceClampsToMinimum(t *testing.T) {
	for _, short := range []float64{-5, 0, 0.5, 2.999} {
		clamped := NewProjectile(testConfig())
		clamped.Launch(short, math.Pi/4)

		minimum := NewProjectile(testConfig())
		minimum.Launch(3, math.Pi/4)

		require.Equal(t, minimum.Velocity, clamped.Velocity, "distance %v", short)

		for i := 0; i < 50; i++ {
			a := clamped.Tick(testDt)
			b := minimum.Tick(testDt)
			assert.Equal(t, b, a)
			assert.Equal(t, minimum.Position, clamped.Position)
		}
	}
}

func TestTickZeroIsIdempotent(t *testing.T) {
	p := NewProjectile(testConfig())
	p.Launch(10, math.Pi/4)
	p.Tick(testDt)

	before := *p
	for i := 0; i < 10; i++ {
		assert.False(t, p.Tick(0))
	}
	assert.Equal(t, before, *p)
}

func TestInactiveProjectileIsNotMutated(t *testing.T) {
	p := NewProjectile(testConfig())
	p.Position = mgl64.Vec3{9, 9, 9}
	for i := 0; i < 10; i++ {
		p.Tick(0.1)
	}
	assert.Equal(t, mgl64.Vec3{9, 9, 9}, p.Position)
	assert.False(t, p.Active)
}

func TestEightUnitCastScenario(t *testing.T) {
	p := NewProjectile(testConfig())
	p.Launch(8, math.Pi/4)
	require.Greater(t, p.Velocity.Z(), 0.0)

	flips := 0
	lastSign := math.Copysign(1, p.Velocity.Z())
	for !p.Grounded {
		p.Tick(testDt)
		if p.Grounded {
			break
		}
		if sign := math.Copysign(1, p.Velocity.Z()); sign != lastSign {
			flips++
			lastSign = sign
		}
	}

	assert.Equal(t, 1, flips, "vertical velocity must change sign exactly once")
	assert.InDelta(t, 8.0, p.Travel(), 0.05)
	assert.LessOrEqual(t, p.Position.Z(), 2.0)
}

func TestGroundContactFreezesButStaysActive(t *testing.T) {
	p := NewProjectile(testConfig())
	p.Launch(6, math.Pi/4)
	flyUntilGround(t, p, testDt)

	assert.True(t, p.Active, "contact does not clear the active flag")
	assert.True(t, p.Grounded)
	assert.True(t, p.AtGround())
	assert.Equal(t, mgl64.Vec3{}, p.Velocity)

	frozen := p.Position
	for i := 0; i < 100; i++ {
		assert.False(t, p.Tick(testDt))
	}
	assert.Equal(t, frozen, p.Position)

	// Next launch restarts from the rest origin
	p.Launch(6, math.Pi/4)
	assert.Equal(t, testConfig().Rest, p.Position)
	assert.False(t, p.Grounded)
}

func TestCatchReturnsToRest(t *testing.T) {
	p := NewProjectile(testConfig())
	p.Launch(6, math.Pi/4)
	flyUntilGround(t, p, testDt)

	p.Catch()
	assert.False(t, p.Active)
	assert.False(t, p.Grounded)
	assert.Equal(t, testConfig().Rest, p.Position)
	assert.Equal(t, mgl64.Vec3{}, p.Velocity)
}

func TestSetRestMovesLaunchOrigin(t *testing.T) {
	p := NewProjectile(testConfig())
	rest := mgl64.Vec3{0.5, -6, 5.5}
	p.SetRest(rest)
	assert.Equal(t, rest, p.Position, "idle projectile follows the new origin")

	p.Launch(6, math.Pi/4)
	p.Tick(testDt)
	inFlight := p.Position
	p.SetRest(mgl64.Vec3{})
	assert.Equal(t, inFlight, p.Position, "flight is not disturbed")

	p.Catch()
	assert.Equal(t, mgl64.Vec3{}, p.Position)
}

func TestLateralDriftIsOrthogonal(t *testing.T) {
	cfg := testConfig()
	cfg.LateralDrift = 0.5
	p := NewProjectile(cfg)
	p.Launch(10, math.Pi/4)
	flyUntilGround(t, p, testDt)

	// Heading +Y, counter-clockwise orthogonal is -X
	assert.Less(t, p.Position.X(), cfg.Rest.X())
	assert.InDelta(t, 10.0, p.Travel(), 0.1)
}

func TestHeadingIsNormalized(t *testing.T) {
	cfg := testConfig()
	cfg.Heading = mgl64.Vec2{3, 4}
	p := NewProjectile(cfg)
	p.Launch(10, math.Pi/4)
	flyUntilGround(t, p, testDt)

	d := p.Position.Sub(cfg.Rest)
	assert.InDelta(t, 4.0/3.0, d.Y()/d.X(), 1e-9, "direction follows the heading")
	assert.InDelta(t, 10.0, p.Travel(), 0.1)
}

func TestLaunchVelocityDegenerateInputs(t *testing.T) {
	h, v := LaunchVelocity(5, math.Pi/2, 2, -9.8)
	assert.Equal(t, 5.0, h)
	assert.Equal(t, 0.0, v)

	h, v = LaunchVelocity(5, 0, -1, -9.8)
	assert.Equal(t, 5.0, h)
	assert.Equal(t, 0.0, v)

	h, v = LaunchVelocity(5, math.Pi/4, 2, 0)
	assert.Equal(t, 5.0, h)
	assert.Equal(t, 0.0, v)
}
