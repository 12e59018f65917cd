package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default linear master gain
	AudioMasterVolume = 0.6
)

// Cast Sound (filtered noise sweep)
const (
	CastSoundDuration = 300 * time.Millisecond
	CastSoundAttack   = 150 * time.Millisecond
	CastSoundRelease  = 150 * time.Millisecond
)

// Catch Sound (bell)
const (
	CatchSoundDuration           = 600 * time.Millisecond
	CatchSoundAttack             = 5 * time.Millisecond
	CatchSoundFundamentalRelease = 550 * time.Millisecond
	CatchSoundOvertoneRelease    = 200 * time.Millisecond
)

// Splash Sound (low thump on water contact)
const (
	SplashSoundDuration = 180 * time.Millisecond
	SplashSoundAttack   = 5 * time.Millisecond
	SplashSoundRelease  = 150 * time.Millisecond
)

// Cue voicing
const (
	CatchFundamentalHz = 880.0
	CatchOvertoneHz    = 1760.0
	SplashThumpHz      = 90.0

	// Mix weights of the two catch partials and the splash body/noise layers
	CatchFundamentalGain = 0.7
	CatchOvertoneGain    = 0.3
	SplashThumpGain      = 0.8
	SplashNoiseGain      = 0.2
)
