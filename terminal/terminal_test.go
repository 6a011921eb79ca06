package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmergencyReset_WritesRestoreSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	assert.Contains(t, out, "\x1b[?1000l", "mouse click tracking off")
	assert.Contains(t, out, "\x1b[?25h", "cursor shown")
	assert.Contains(t, out, "\x1b[?1049l", "alt screen exited")
	assert.Contains(t, out, "\x1b[0m", "attributes reset")
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"256", ColorMode256},
		{"truecolor", ColorModeTrueColor},
		{"24bit", ColorModeTrueColor},
		{"TRUE", ColorModeTrueColor},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseColorMode("sepia")
	assert.Error(t, err)
}

func TestDetectColorMode(t *testing.T) {
	for _, k := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TERM", "xterm")
	assert.Equal(t, ColorModeTrueColor, DetectColorMode())

	t.Setenv("COLORTERM", "")
	assert.Equal(t, ColorMode256, DetectColorMode())

	t.Setenv("TERM", "xterm-direct")
	assert.Equal(t, ColorModeTrueColor, DetectColorMode())
}
