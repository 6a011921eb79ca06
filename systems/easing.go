package systems

import (
	"math"
	"time"
)

// EaseInOutCubic is the symmetric cubic ease used for particle travel
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}

// ArcOffset is the single-hump vertical displacement at eased progress e
func ArcOffset(e, height float64) float64 {
	return math.Sin(clamp01(e)*math.Pi) * height
}

// ElapsedProgress maps elapsed time to [0,1] for a segment starting at delay and lasting duration
// Pure in its inputs, so missed frames never corrupt the result
func ElapsedProgress(elapsed, delay, duration time.Duration) float64 {
	adjusted := elapsed - delay
	if adjusted <= 0 {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return clamp01(float64(adjusted) / float64(duration))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
