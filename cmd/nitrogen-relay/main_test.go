package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nitrogen-relay/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect_NumericControl(t *testing.T) {
	out, err := execute(t, "inspect", "80")
	require.NoError(t, err)

	assert.Contains(t, out, "Control")
	assert.Contains(t, out, "80")
	assert.Contains(t, out, "high (Abundant)")
	assert.Contains(t, out, "NO₃⁻ → NO₂⁻ → N₂O → N₂")
	assert.Contains(t, out, "⚠ spike risk")
	assert.Equal(t, 4, strings.Count(out, "active"))
}

func TestInspect_TierName(t *testing.T) {
	out, err := execute(t, "inspect", "low")
	require.NoError(t, err)

	assert.Contains(t, out, "low (Sparse)")
	assert.Contains(t, out, "Open-Ocean Twilight Zone")
	assert.NotContains(t, out, "spike risk")
	assert.Equal(t, 1, strings.Count(out, "active"))
	assert.Equal(t, 3, strings.Count(out, "dormant"))
}

func TestInspect_ClampsOutOfRange(t *testing.T) {
	out, err := execute(t, "inspect", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "high (Abundant)")
}

func TestInspect_AllTiers(t *testing.T) {
	out, err := execute(t, "inspect")
	require.NoError(t, err)
	for _, want := range []string{"low (Sparse)", "medium (Moderate)", "high (Abundant)"} {
		assert.Contains(t, out, want)
	}
}

func TestInspect_UnknownTier(t *testing.T) {
	_, err := execute(t, "inspect", "feast")
	assert.Error(t, err)
}

func TestConfigShow_Defaults(t *testing.T) {
	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, config.Decode([]byte(out), &got))
	assert.Equal(t, config.Default(), got)
}

func TestConfigShow_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  initial_control: 90\n"), 0o644))

	out, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "initial_control: 90")
}

func TestLoadConfig_ControlFlag(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--control", "85"}))
	opts := &rootOptions{control: 85}

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 85, cfg.UI.InitialControl)

	opts.control = 140
	_, err = loadConfig(cmd, opts)
	assert.True(t, errors.Is(err, config.ErrControl))
}

func TestLoadConfig_UnsetControlKeepsConfig(t *testing.T) {
	cmd := newRootCmd()
	cfg, err := loadConfig(cmd, &rootOptions{})
	require.NoError(t, err)
	assert.Equal(t, config.Default().UI.InitialControl, cfg.UI.InitialControl)
}
