package render

import (
	"math"

	"github.com/lixenwraith/nitrogen-relay/constants"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right is the first column past r
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past r
func (r Rect) Bottom() int { return r.Y + r.H }

const (
	sliderLabelWidth = 7  // "Food  ["
	sliderValueWidth = 16 // "] 100  Abundant"
	bandHeight       = 3
)

// Layout is the fixed cell geometry of the relay screen for one terminal size
type Layout struct {
	Usable bool
	Width  int
	Height int

	Header   Rect
	Status   Rect
	Facts    Rect
	Band     Rect
	Stations [scenario.StationCount]Rect
	Slider   Rect
	Ticks    Rect
	Gauge    Rect
	Markers  Rect
	Details  Rect
	Footer   Rect
}

// ComputeLayout lays the relay screen out top to bottom
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	if width < constants.MinScreenWidth || height < constants.MinScreenHeight {
		return l
	}
	l.Usable = true

	l.Header = Rect{0, 0, width, 1}
	l.Status = Rect{0, 1, width, 1}
	l.Facts = Rect{1, 2, width - 2, 2}
	l.Band = Rect{0, 5, width, bandHeight}

	laneY := l.Band.Bottom()
	boxW := width/scenario.StationCount - 2
	for i, s := range scenario.Stations() {
		cx := l.Column(s.X)
		l.Stations[i] = Rect{cx - boxW/2, laneY, boxW, constants.RelayLaneHeight}
	}

	sliderY := laneY + constants.RelayLaneHeight + 1
	l.Slider = Rect{sliderLabelWidth, sliderY, width - sliderLabelWidth - sliderValueWidth, 1}
	l.Ticks = Rect{l.Slider.X, sliderY + 1, l.Slider.W, 1}

	gaugeW := l.Slider.W
	if gaugeW > constants.GaugeWidthMax {
		gaugeW = constants.GaugeWidthMax
	}
	l.Gauge = Rect{sliderLabelWidth, sliderY + 3, gaugeW, 1}
	l.Markers = Rect{l.Gauge.X, l.Gauge.Y + 1, gaugeW, 1}

	l.Footer = Rect{0, height - 1, width, 1}
	detailsY := l.Markers.Bottom() + 1
	l.Details = Rect{1, detailsY, width - 2, max(0, l.Footer.Y-detailsY)}
	return l
}

// Column maps a normalized percent x to a terminal column
func (l Layout) Column(pct float64) int {
	return int(math.Round(pct / 100 * float64(l.Width)))
}

// BandRow maps a particle's normalized y to a row in the particle band
// The lane baseline sits on the bottom row and the arc peak on the top row
func (l Layout) BandRow(y float64) int {
	offset := (constants.RelayLaneY - y) / math.Abs(constants.RelayArcHeight)
	offset = math.Max(0, math.Min(1, offset))
	return l.Band.Bottom() - 1 - int(math.Round(offset*float64(l.Band.H-1)))
}

// KnobColumn is the slider column of a control value
func (l Layout) KnobColumn(c scenario.ControlValue) int {
	return l.Slider.X + int(math.Round(float64(c)/scenario.ControlMax*float64(l.Slider.W-1)))
}

// ControlAt maps a click on the slider row to a control value
// Clicks just past either end of the track clamp to the range bounds
func (l Layout) ControlAt(x, y int) (scenario.ControlValue, bool) {
	if !l.Usable || y != l.Slider.Y || x < l.Slider.X-2 || x > l.Slider.Right()+1 {
		return 0, false
	}
	ratio := float64(x-l.Slider.X) / float64(l.Slider.W-1)
	return scenario.NewControlValue(ratio * scenario.ControlMax), true
}

// StationAt returns the station box under a cell
func (l Layout) StationAt(x, y int) (scenario.StationID, bool) {
	if !l.Usable {
		return 0, false
	}
	for i, r := range l.Stations {
		if r.Contains(x, y) {
			return scenario.StationID(i), true
		}
	}
	return 0, false
}
