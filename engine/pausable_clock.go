package engine

import (
	"time"

	"github.com/lixenwraith/fishyman/vmath"
)

// AnimationClock converts provider readings into animation seconds with pause support
// Owned by the frame loop goroutine, not safe for concurrent use
type AnimationClock struct {
	provider TimeProvider
	start    time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration

	last     float64 // animation time returned by the previous Tick
	maxDelta float64
}

// NewAnimationClock starts a clock at animation time zero
// maxDelta caps the step returned by Tick, non-positive disables the cap
func NewAnimationClock(provider TimeProvider, maxDelta float64) *AnimationClock {
	return &AnimationClock{
		provider: provider,
		start:    provider.Now(),
		maxDelta: maxDelta,
	}
}

// Now returns animation seconds, frozen while paused
func (c *AnimationClock) Now() float64 {
	ref := c.provider.Now()
	if c.paused {
		ref = c.pauseStart
	}
	return ref.Sub(c.start).Seconds() - c.totalPaused.Seconds()
}

// Tick returns the current animation time and the step since the previous Tick
// The step is clamped to [0, maxDelta]
func (c *AnimationClock) Tick() (now, dt float64) {
	now = c.Now()
	dt = now - c.last
	c.last = now
	if dt < 0 {
		return now, 0
	}
	if c.maxDelta > 0 {
		dt = vmath.Clamp(dt, 0, c.maxDelta)
	}
	return now, dt
}

// Pause freezes animation time
func (c *AnimationClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues animation time, excluding the paused span
func (c *AnimationClock) Resume() {
	if !c.paused {
		return
	}
	c.totalPaused += c.provider.Now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (c *AnimationClock) Toggle() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

// IsPaused returns current pause state
func (c *AnimationClock) IsPaused() bool {
	return c.paused
}

// TotalPaused returns cumulative pause time including a pause in progress
func (c *AnimationClock) TotalPaused() time.Duration {
	total := c.totalPaused
	if c.paused {
		total += c.provider.Now().Sub(c.pauseStart)
	}
	return total
}
