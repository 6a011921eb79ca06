package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.UI.InitialControl)

	timings := cfg.RelayTimings()
	assert.Equal(t, 500*time.Millisecond, timings.SeedDelay)
	assert.Equal(t, 3*time.Second, timings.Duration)
	assert.Equal(t, [3]int{1, 2, 3}, timings.ParticlesPerEdge)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
relay:
  stagger: 250ms
  particles_high: 4
ui:
  initial_control: 90
audio:
  enabled: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Relay.Stagger)
	assert.Equal(t, 4, cfg.Relay.ParticlesHigh)
	assert.Equal(t, 90, cfg.UI.InitialControl)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, Default().Relay.Cooldown, cfg.Relay.Cooldown, "untouched keys keep defaults")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeFile(t, t.TempDir(), "relay:\n  staggr: 1s\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staggr")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero stagger", func(c *Config) { c.Relay.Stagger = 0 }, ErrNonPositiveDuration},
		{"negative cooldown", func(c *Config) { c.Relay.Cooldown = -time.Second }, ErrNegativeDuration},
		{"zero seed delay ok", func(c *Config) { c.Relay.SeedDelay = 0 }, nil},
		{"no particles", func(c *Config) { c.Relay.ParticlesLow = 0 }, ErrParticleCount},
		{"too many particles", func(c *Config) { c.Relay.ParticlesHigh = MaxParticlesPerEdge + 1 }, ErrParticleCount},
		{"frame rate", func(c *Config) { c.UI.FrameRate = 0 }, ErrFrameRate},
		{"control", func(c *Config) { c.UI.InitialControl = 101 }, ErrControl},
		{"volume", func(c *Config) { c.Audio.Volume = 1.5 }, ErrVolume},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_ReportsFirstFieldInFileOrder(t *testing.T) {
	cfg := Default()
	cfg.Relay.Stagger = 0
	cfg.Relay.Cooldown = -time.Second
	cfg.UI.GaugePulse = 0
	cfg.Relay.ParticlesHigh = 0

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, "relay.stagger=0s: duration must be positive", err.Error())
	}

	cfg.Relay.Stagger = time.Second
	assert.ErrorIs(t, cfg.Validate(), ErrNegativeDuration)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ui:\n  frame_rate: 9999\n")
	cfg, err := Load(path)
	assert.ErrorIs(t, err, ErrFrameRate)
	assert.Equal(t, Default(), cfg)
}

func TestEncode_ReadsBackAsDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))
	assert.Contains(t, buf.String(), "stagger: 400ms")

	var got Config
	require.NoError(t, Decode(buf.Bytes(), &got))
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Encoded defaults did not read back (-want +got):\n%s", diff)
	}
}
