// Package config loads fishyman settings from TOML with environment overrides
package config

import (
	"bytes"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/fishyman/audio"
	"github.com/lixenwraith/fishyman/engine"
	"github.com/lixenwraith/fishyman/parameter"
	"github.com/lixenwraith/fishyman/rig"
	"github.com/lixenwraith/fishyman/school"
)

// Environment overrides, applied after the file
const (
	EnvSeed         = "FISHYMAN_SEED"
	EnvFish         = "FISHYMAN_FISH"
	EnvAudioEnabled = "FISHYMAN_AUDIO_ENABLED"
	EnvMasterVolume = "FISHYMAN_MASTER_VOLUME" // percent, 0-100
)

// Config is the full settings tree. Angles are radians, times seconds
type Config struct {
	Scene      SceneSection      `toml:"scene"`
	Projectile ProjectileSection `toml:"projectile"`
	Rig        RigSection        `toml:"rig"`
	Camera     CameraSection     `toml:"camera"`
	Audio      AudioSection      `toml:"audio"`
	Debug      DebugSection      `toml:"debug"`
}

type SceneSection struct {
	FishCount       int     `toml:"fish_count"`
	Seed            int64   `toml:"seed"` // 0 seeds from the clock
	ExclusionRadius float64 `toml:"exclusion_radius"`
	CatchRadius     float64 `toml:"catch_radius"`
	Extent          float64 `toml:"extent"`
}

type ProjectileSection struct {
	Gravity         float64 `toml:"gravity"`
	DesiredDistance float64 `toml:"desired_distance"`
	LaunchAngle     float64 `toml:"launch_angle"`
	MaxDistance     float64 `toml:"max_distance"`
}

type RigSection struct {
	SwingAmplitude float64 `toml:"swing_amplitude"`
	SwingPeriod    float64 `toml:"swing_period"`
	CockedAngle    float64 `toml:"cocked_angle"`
	RestingAngle   float64 `toml:"resting_angle"`
	CaughtDuration float64 `toml:"caught_duration"`
}

type CameraSection struct {
	Mode      string `toml:"mode"` // aerial or pov
	Animated  bool   `toml:"animated"`
	Smoothing bool   `toml:"smoothing"`
}

type AudioSection struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0..1
	SampleRate int     `toml:"sample_rate"`
}

type DebugSection struct {
	Enabled bool   `toml:"enabled"`
	LogDir  string `toml:"log_dir"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Scene: SceneSection{
			FishCount:       parameter.FishCount,
			ExclusionRadius: parameter.ExclusionRadius,
			CatchRadius:     parameter.CatchRadius,
			Extent:          parameter.SpawnExtent,
		},
		Projectile: ProjectileSection{
			Gravity:         parameter.Gravity,
			DesiredDistance: parameter.DefaultLaunchDistance,
			LaunchAngle:     parameter.DefaultLaunchAngle,
			MaxDistance:     parameter.MaxLaunchDistance,
		},
		Rig: RigSection{
			SwingAmplitude: parameter.SwingAmplitude,
			SwingPeriod:    parameter.SwingPeriod,
			CockedAngle:    parameter.CockedAngle,
			RestingAngle:   parameter.RestingAngle,
			CaughtDuration: parameter.CaughtDuration,
		},
		Camera: CameraSection{
			Mode:      engine.CameraAerial.String(),
			Animated:  true,
			Smoothing: true,
		},
		Audio: AudioSection{
			Enabled:    false,
			Volume:     parameter.AudioMasterVolume,
			SampleRate: parameter.AudioSampleRate,
		},
		Debug: DebugSection{
			LogDir: parameter.LogDir,
		},
	}
}

// Load reads path over the defaults, applies the environment and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := cfg.decode(data); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(c)
}

// ApplyEnv overrides fields from the environment, malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Scene.Seed = seed
		}
	}

	if v := os.Getenv(EnvFish); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Scene.FishCount = n
		}
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = enabled
		}
	}

	// 0-100 converted to 0.0-1.0
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if pct, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = math.Max(0, math.Min(1, float64(pct)/100))
		}
	}
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Scene.FishCount < 0:
		return errors.Errorf("scene.fish_count must be >= 0, got %d", c.Scene.FishCount)
	case c.Scene.Extent <= 0:
		return errors.Errorf("scene.extent must be > 0, got %g", c.Scene.Extent)
	case c.Scene.ExclusionRadius < 0:
		return errors.Errorf("scene.exclusion_radius must be >= 0, got %g", c.Scene.ExclusionRadius)
	case c.Scene.CatchRadius <= 0:
		return errors.Errorf("scene.catch_radius must be > 0, got %g", c.Scene.CatchRadius)
	case c.Projectile.Gravity >= 0:
		return errors.Errorf("projectile.gravity must be negative, got %g", c.Projectile.Gravity)
	case c.Projectile.LaunchAngle <= 0 || c.Projectile.LaunchAngle >= math.Pi/2:
		return errors.Errorf("projectile.launch_angle must be in (0, pi/2), got %g", c.Projectile.LaunchAngle)
	case c.Projectile.MaxDistance < parameter.MinLaunchDistance:
		return errors.Errorf("projectile.max_distance must be >= %g, got %g", parameter.MinLaunchDistance, c.Projectile.MaxDistance)
	case c.Projectile.DesiredDistance <= 0:
		return errors.Errorf("projectile.desired_distance must be > 0, got %g", c.Projectile.DesiredDistance)
	case c.Rig.SwingPeriod <= 0:
		return errors.Errorf("rig.swing_period must be > 0, got %g", c.Rig.SwingPeriod)
	case c.Rig.CaughtDuration <= 0:
		return errors.Errorf("rig.caught_duration must be > 0, got %g", c.Rig.CaughtDuration)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	case c.Audio.SampleRate <= 0:
		return errors.Errorf("audio.sample_rate must be > 0, got %d", c.Audio.SampleRate)
	}
	if _, err := engine.ParseCameraMode(c.Camera.Mode); err != nil {
		return errors.Wrap(err, "camera.mode")
	}
	return nil
}

// Scene maps the settings onto an engine scene configuration
func (c *Config) Scene() engine.SceneConfig {
	sc := engine.DefaultSceneConfig()
	sc.FishCount = c.Scene.FishCount
	sc.ExclusionRadius = c.Scene.ExclusionRadius
	sc.CatchRadius = c.Scene.CatchRadius
	sc.DesiredDistance = c.Projectile.DesiredDistance
	sc.LaunchAngle = c.Projectile.LaunchAngle
	sc.MaxDistance = c.Projectile.MaxDistance
	sc.Gravity = c.Projectile.Gravity
	sc.Animated = c.Camera.Animated
	sc.Smoothing = c.Camera.Smoothing
	// Validate has already accepted the mode
	sc.CameraMode, _ = engine.ParseCameraMode(c.Camera.Mode)

	sc.Arm = rig.DefaultArm()
	sc.Arm.Amplitude = c.Rig.SwingAmplitude
	sc.Arm.Period = c.Rig.SwingPeriod
	sc.Arm.Cocked = c.Rig.CockedAngle
	sc.Arm.Resting = c.Rig.RestingAngle
	sc.Arm.Duration = c.Rig.CaughtDuration

	sc.School = school.DefaultConfig()
	sc.School.Extent = c.Scene.Extent
	return sc
}

// AudioOptions maps the audio section onto player options
func (c *Config) AudioOptions() audio.Options {
	return audio.Options{
		Enabled:      c.Audio.Enabled,
		MasterVolume: c.Audio.Volume,
		SampleRate:   c.Audio.SampleRate,
	}
}

// Rand returns the scene random source, seed 0 uses the clock
func (c *Config) Rand() *rand.Rand {
	seed := c.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
