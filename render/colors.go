package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// Base palette
var (
	RgbBackground = scenario.RGB{R: 8, G: 17, B: 32} // Deep ocean
	RgbForeground = scenario.RGB{R: 226, G: 232, B: 240}
	RgbMuted      = scenario.RGB{R: 120, G: 134, B: 158}
	RgbBorder     = scenario.RGB{R: 51, G: 65, B: 85}
	RgbLearned    = scenario.RGB{R: 74, G: 222, B: 128} // Completed concepts
	RgbTrack      = scenario.RGB{R: 30, G: 41, B: 59}
)

// Color converts a palette entry to a terminal color
func Color(c scenario.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Lerp blends a toward b by t in [0,1]
func Lerp(a, b scenario.RGB, t float64) scenario.RGB {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return scenario.RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Dim fades c toward the background by intensity; 1 is full color
func Dim(c scenario.RGB, intensity float64) scenario.RGB {
	return Lerp(RgbBackground, c, intensity)
}

// Brighten pushes c toward white, used for pulses
func Brighten(c scenario.RGB, amount float64) scenario.RGB {
	return Lerp(c, scenario.RGB{R: 255, G: 255, B: 255}, amount)
}

// Base is the default style on the background
func Base() tcell.Style {
	return tcell.StyleDefault.Background(Color(RgbBackground)).Foreground(Color(RgbForeground))
}

// Fg is the base style with a foreground color
func Fg(c scenario.RGB) tcell.Style {
	return Base().Foreground(Color(c))
}
