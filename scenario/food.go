package scenario

import (
	"fmt"
	"math"
	"strings"
)

// FoodLevel is the discretized organic-matter availability
type FoodLevel int

const (
	FoodLow FoodLevel = iota
	FoodMedium
	FoodHigh
)

// FoodLevelCount is the number of food tiers
const FoodLevelCount = 3

// Control range and tier thresholds (inclusive on the lower tier)
const (
	ControlMin       = 0
	ControlMax       = 100
	ControlLowMax    = 25
	ControlMediumMax = 75
)

var foodLevelNames = [FoodLevelCount]string{"low", "medium", "high"}

// FoodLevels returns all tiers in ascending order
func FoodLevels() []FoodLevel {
	return []FoodLevel{FoodLow, FoodMedium, FoodHigh}
}

func (l FoodLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("FoodLevel(%d)", int(l))
	}
	return foodLevelNames[l]
}

// Valid reports whether l is one of the three tiers
func (l FoodLevel) Valid() bool {
	return l >= FoodLow && l <= FoodHigh
}

// ParseFoodLevel accepts the tier name in any case
func ParseFoodLevel(s string) (FoodLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range foodLevelNames {
		if n == name {
			return FoodLevel(i), nil
		}
	}
	return FoodLow, fmt.Errorf("unknown food level %q", s)
}

// mustLevel fails fast on values outside the closed enumeration
func mustLevel(l FoodLevel) {
	if !l.Valid() {
		panic(fmt.Sprintf("scenario: invalid food level %d", int(l)))
	}
}

// ControlValue is a slider position in [ControlMin, ControlMax]
type ControlValue int

// NewControlValue clamps and rounds a raw control reading
func NewControlValue(v float64) ControlValue {
	return ControlValue(math.Round(clampControl(v)))
}

// Level resolves the tier of the control position
func (c ControlValue) Level() FoodLevel {
	return ResolveFoodLevel(float64(c))
}

// Add returns c moved by delta, clamped to the control range
func (c ControlValue) Add(delta int) ControlValue {
	return NewControlValue(float64(int(c) + delta))
}

// ControlFor returns the preset slider position of a tier
func ControlFor(level FoodLevel) ControlValue {
	return ControlValue(DetailsFor(level).Numeric)
}

// clampControl pins v to the control range; NaN maps to the lower bound
func clampControl(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return ControlMin
	case v < ControlMin:
		return ControlMin
	case v > ControlMax:
		return ControlMax
	}
	return v
}

// ResolveFoodLevel maps a control reading to its tier
// Out-of-range and non-finite input is clamped, never rejected
func ResolveFoodLevel(control float64) FoodLevel {
	c := clampControl(control)
	switch {
	case c <= ControlLowMax:
		return FoodLow
	case c <= ControlMediumMax:
		return FoodMedium
	default:
		return FoodHigh
	}
}
