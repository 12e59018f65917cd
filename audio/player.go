package audio

import (
	"math/rand"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/fishyman/parameter"
)

// Options configures a Player
type Options struct {
	Enabled      bool
	MasterVolume float64 // linear, 0..1
	SampleRate   int
}

// DefaultOptions returns audio off at the default rate and volume
func DefaultOptions() Options {
	return Options{
		Enabled:      false,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// Player turns scene events into sound cues
// Without an output device it stays silent but still counts requested cues
type Player struct {
	mu      sync.Mutex
	opts    Options
	rate    beep.SampleRate
	rng     *rand.Rand
	started bool
	played  [cueCount]int
}

// NewPlayer creates a player, Start must be called before anything is audible
func NewPlayer(opts Options, rng *rand.Rand) *Player {
	if opts.SampleRate <= 0 {
		opts.SampleRate = parameter.AudioSampleRate
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Player{
		opts: opts,
		rate: beep.SampleRate(opts.SampleRate),
		rng:  rng,
	}
}

// Start opens the speaker. A failure leaves the player silent
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.opts.Enabled || p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	p.started = true
	return nil
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		speaker.Clear()
		speaker.Close()
		p.started = false
	}
}

// Enabled reports whether cues are being played
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opts.Enabled
}

// SetEnabled toggles playback without touching the device
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.opts.Enabled = enabled
	p.mu.Unlock()
}

// SetVolume sets the master volume, clamped to 0..1
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.opts.MasterVolume = clampVolume(v)
	p.mu.Unlock()
}

// Volume returns the master volume
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opts.MasterVolume
}

// Play queues cue on the speaker
func (p *Player) Play(cue Cue) {
	if cue < 0 || cue >= cueCount {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.opts.Enabled || p.opts.MasterVolume <= 0 {
		return
	}
	p.played[cue]++
	if !p.started {
		return
	}
	speaker.Play(NewCue(cue, p.rate, p.opts.MasterVolume, p.rng))
}

// Played returns how many times cue was requested while enabled
func (p *Player) Played(cue Cue) int {
	if cue < 0 || cue >= cueCount {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[cue]
}

func (p *Player) OnLaunch(distance, angle float64) { p.Play(CueCast) }

func (p *Player) OnSplash(position mgl64.Vec3) { p.Play(CueSplash) }

func (p *Player) OnCatch(actorID int, position mgl64.Vec3) { p.Play(CueCatch) }

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
