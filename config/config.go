// Package config loads tunable timings and presentation settings from an optional YAML file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nitrogen-relay/constants"
	"github.com/lixenwraith/nitrogen-relay/scenario"
	"github.com/lixenwraith/nitrogen-relay/systems"
)

var (
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrNegativeDuration    = errors.New("duration must not be negative")
	ErrParticleCount       = errors.New("particles per edge out of range")
	ErrFrameRate           = errors.New("frame rate out of range")
	ErrVolume              = errors.New("volume out of range")
	ErrControl             = errors.New("initial control out of range")
)

// MaxParticlesPerEdge bounds the per-edge batch size
const MaxParticlesPerEdge = 8

// Relay tunes the particle cycle
type Relay struct {
	SeedDelay        time.Duration `yaml:"seed_delay"`
	Stagger          time.Duration `yaml:"stagger"`
	ParticleDuration time.Duration `yaml:"particle_duration"`
	DrainTail        time.Duration `yaml:"drain_tail"`
	Cooldown         time.Duration `yaml:"cooldown"`
	ParticlesLow     int           `yaml:"particles_low"`
	ParticlesMedium  int           `yaml:"particles_medium"`
	ParticlesHigh    int           `yaml:"particles_high"`
}

// UI tunes presentation
type UI struct {
	FrameRate      int           `yaml:"frame_rate"`
	InitialControl int           `yaml:"initial_control"`
	SkipIntro      bool          `yaml:"skip_intro"`
	GaugePulse     time.Duration `yaml:"gauge_pulse"`
	StationPulse   time.Duration `yaml:"station_pulse"`
	IntroInterval  time.Duration `yaml:"intro_interval"`
}

// Audio tunes sound cues
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0 silent, 1 full
}

// Config is the full settings tree
type Config struct {
	Relay Relay `yaml:"relay"`
	UI    UI    `yaml:"ui"`
	Audio Audio `yaml:"audio"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Relay: Relay{
			SeedDelay:        constants.RelaySeedDelay,
			Stagger:          constants.RelayStagger,
			ParticleDuration: constants.RelayParticleDuration,
			DrainTail:        constants.RelayDrainTail,
			Cooldown:         constants.RelayCooldown,
			ParticlesLow:     constants.RelayParticlesLow,
			ParticlesMedium:  constants.RelayParticlesMedium,
			ParticlesHigh:    constants.RelayParticlesHigh,
		},
		UI: UI{
			FrameRate:      constants.DefaultFrameRate,
			InitialControl: int(scenario.ControlFor(scenario.FoodMedium)),
			GaugePulse:     constants.GaugePulseDuration,
			StationPulse:   constants.StationPulseDuration,
			IntroInterval:  constants.IntroCharInterval,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// Load reads path over the defaults; an empty path yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML onto cfg, rejecting unknown keys
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Encode writes cfg as YAML that Decode reads back
func Encode(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// durationField names one duration setting for validation
type durationField struct {
	name      string
	d         time.Duration
	allowZero bool
}

// Validate checks ranges in file order and reports the first violation
func (c Config) Validate() error {
	for _, f := range []durationField{
		{"relay.seed_delay", c.Relay.SeedDelay, true},
		{"relay.stagger", c.Relay.Stagger, false},
		{"relay.particle_duration", c.Relay.ParticleDuration, false},
		{"relay.drain_tail", c.Relay.DrainTail, true},
		{"relay.cooldown", c.Relay.Cooldown, true},
		{"ui.gauge_pulse", c.UI.GaugePulse, false},
		{"ui.station_pulse", c.UI.StationPulse, false},
		{"ui.intro_interval", c.UI.IntroInterval, false},
	} {
		switch {
		case f.allowZero && f.d < 0:
			return fmt.Errorf("%s=%s: %w", f.name, f.d, ErrNegativeDuration)
		case !f.allowZero && f.d <= 0:
			return fmt.Errorf("%s=%s: %w", f.name, f.d, ErrNonPositiveDuration)
		}
	}

	counts := []struct {
		name string
		n    int
	}{
		{"relay.particles_low", c.Relay.ParticlesLow},
		{"relay.particles_medium", c.Relay.ParticlesMedium},
		{"relay.particles_high", c.Relay.ParticlesHigh},
	}
	for _, f := range counts {
		if f.n < 1 || f.n > MaxParticlesPerEdge {
			return fmt.Errorf("%s=%d: %w", f.name, f.n, ErrParticleCount)
		}
	}

	if c.UI.FrameRate < 1 || c.UI.FrameRate > constants.MaxFrameRate {
		return fmt.Errorf("ui.frame_rate=%d: %w", c.UI.FrameRate, ErrFrameRate)
	}
	if c.UI.InitialControl < scenario.ControlMin || c.UI.InitialControl > scenario.ControlMax {
		return fmt.Errorf("ui.initial_control=%d: %w", c.UI.InitialControl, ErrControl)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume=%g: %w", c.Audio.Volume, ErrVolume)
	}
	return nil
}

// RelayTimings converts the relay section for the animator
func (c Config) RelayTimings() systems.RelayTimings {
	return systems.RelayTimings{
		SeedDelay: c.Relay.SeedDelay,
		Stagger:   c.Relay.Stagger,
		Duration:  c.Relay.ParticleDuration,
		DrainTail: c.Relay.DrainTail,
		Cooldown:  c.Relay.Cooldown,
		ParticlesPerEdge: [scenario.FoodLevelCount]int{
			scenario.FoodLow:    c.Relay.ParticlesLow,
			scenario.FoodMedium: c.Relay.ParticlesMedium,
			scenario.FoodHigh:   c.Relay.ParticlesHigh,
		},
	}
}
