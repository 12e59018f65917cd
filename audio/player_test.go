package audio

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fishyman/engine"
)

var _ engine.Listener = (*Player)(nil)

// TestPlayerDisabled verifies a disabled player ignores every event
func TestPlayerDisabled(t *testing.T) {
	p := NewPlayer(DefaultOptions(), nil)
	if err := p.Start(); err != nil {
		t.Fatalf("start on disabled player: %v", err)
	}
	p.OnLaunch(10, 0.7)
	p.OnSplash(mgl64.Vec3{})
	p.OnCatch(3, mgl64.Vec3{})

	for c := CueCast; c < cueCount; c++ {
		if n := p.Played(c); n != 0 {
			t.Errorf("cue %s played %d times while disabled", c, n)
		}
	}
	p.Close()
}

// TestPlayerRoutesEvents verifies scene events map to their cues
// The speaker is never opened so this runs without an audio device
func TestPlayerRoutesEvents(t *testing.T) {
	opts := DefaultOptions()
	opts.Enabled = true
	p := NewPlayer(opts, nil)

	p.OnLaunch(10, 0.7)
	p.OnSplash(mgl64.Vec3{1, 2, 0})
	p.OnSplash(mgl64.Vec3{1, 2, 0})
	p.OnCatch(0, mgl64.Vec3{})

	if got := p.Played(CueCast); got != 1 {
		t.Errorf("cast: got %d", got)
	}
	if got := p.Played(CueSplash); got != 2 {
		t.Errorf("splash: got %d", got)
	}
	if got := p.Played(CueCatch); got != 1 {
		t.Errorf("catch: got %d", got)
	}
	if got := p.Played(Cue(-1)); got != 0 {
		t.Errorf("invalid cue: got %d", got)
	}
}

// TestPlayerVolume verifies clamping and that zero volume mutes
func TestPlayerVolume(t *testing.T) {
	opts := DefaultOptions()
	opts.Enabled = true
	p := NewPlayer(opts, nil)

	p.SetVolume(2)
	if p.Volume() != 1 {
		t.Errorf("expected clamp to 1, got %f", p.Volume())
	}
	p.SetVolume(-1)
	if p.Volume() != 0 {
		t.Errorf("expected clamp to 0, got %f", p.Volume())
	}

	p.Play(CueCatch)
	if p.Played(CueCatch) != 0 {
		t.Error("expected muted player to skip cues")
	}

	p.SetVolume(0.5)
	p.SetEnabled(false)
	p.Play(CueCatch)
	if p.Enabled() || p.Played(CueCatch) != 0 {
		t.Error("expected disabled player to skip cues")
	}
}
