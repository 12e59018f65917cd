package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/fishyman/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue names a sound tied to a scene event
type Cue int

const (
	CueCast Cue = iota
	CueSplash
	CueCatch
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueCast:
		return "cast"
	case CueSplash:
		return "splash"
	case CueCatch:
		return "catch"
	default:
		return "unknown"
	}
}

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a wave generator lasting duration
// rng feeds WaveNoise and may be nil for the tonal shapes
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	if wave == WaveNoise && rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		rng:    rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with a linear attack and release inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			gain = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain, log2(0) would be -Inf so zero is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewCue builds the streamer for cue at linear gain
func NewCue(cue Cue, rate beep.SampleRate, gain float64, rng *rand.Rand) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueCast:
		s = castSound(rate, rng)
	case CueSplash:
		s = splashSound(rate, rng)
	case CueCatch:
		s = catchSound(rate)
	default:
		return nil
	}
	return newVolume(s, gain)
}

// castSound is a soft noise swell as the line pays out
func castSound(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	noise := NewOscillator(0, parameter.CastSoundDuration, WaveNoise, rate, rng)
	return NewEnvelope(noise, parameter.CastSoundDuration, parameter.CastSoundAttack, parameter.CastSoundRelease, rate)
}

// splashSound layers a low sine thump under a noise burst
func splashSound(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	d := parameter.SplashSoundDuration
	thump := NewEnvelope(NewOscillator(parameter.SplashThumpHz, d, WaveSine, rate, nil),
		d, parameter.SplashSoundAttack, parameter.SplashSoundRelease, rate)
	spray := NewEnvelope(NewOscillator(0, d, WaveNoise, rate, rng),
		d, parameter.SplashSoundAttack, parameter.SplashSoundRelease/2, rate)
	return beep.Mix(
		newVolume(thump, parameter.SplashThumpGain),
		newVolume(spray, parameter.SplashNoiseGain),
	)
}

// catchSound is a two-partial bell
func catchSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.CatchSoundDuration
	fund := NewEnvelope(NewOscillator(parameter.CatchFundamentalHz, d, WaveSine, rate, nil),
		d, parameter.CatchSoundAttack, parameter.CatchSoundFundamentalRelease, rate)
	over := NewEnvelope(NewOscillator(parameter.CatchOvertoneHz, d, WaveSine, rate, nil),
		d, parameter.CatchSoundAttack, parameter.CatchSoundOvertoneRelease, rate)
	return beep.Mix(
		newVolume(fund, parameter.CatchFundamentalGain),
		newVolume(over, parameter.CatchOvertoneGain),
	)
}
