package scenario

import "fmt"

// RGB is a display color independent of the terminal backend
type RGB struct {
	R, G, B uint8
}

// Palette shared by stations, compounds and gas tiers
var (
	ColorTealGlow  = RGB{45, 212, 191}
	ColorOMZViolet = RGB{139, 92, 246}
	ColorCoralCTA  = RGB{251, 113, 133}
	ColorPrimary   = RGB{56, 189, 248}
)

// StationID identifies one node of the relay
type StationID int

const (
	StationNO3 StationID = iota
	StationNO2
	StationN2O
	StationN2
)

// StationCount is the number of relay nodes
const StationCount = 4

// DormantIntensity is the intensity of any station outside the active prefix
const DormantIntensity = 0.2

// Station is one fixed node of the relay pipeline
type Station struct {
	ID          StationID
	Key         string
	Label       string
	Name        string
	Role        string
	Process     string
	Description string
	Specialists string
	RealWorld   string
	X, Y        float64 // normalized percent space
	Color       RGB
}

var stations = [StationCount]Station{
	{
		ID:          StationNO3,
		Key:         "no3",
		Label:       "NO₃⁻",
		Name:        "Nitrate",
		Role:        "Step 1: Nitrate Reduction",
		Process:     "NO₃⁻ → NO₂⁻ + ½O₂",
		Description: "Microbes grab nitrate (NO₃⁻) and remove one oxygen atom",
		Specialists: "First-step specialists excel here - they travel light with minimal enzymes",
		RealWorld:   "Always active when nitrate is present, even in low-food conditions",
		X:           12.5,
		Y:           50,
		Color:       ColorTealGlow,
	},
	{
		ID:          StationNO2,
		Key:         "no2",
		Label:       "NO₂⁻",
		Name:        "Nitrite",
		Role:        "Step 2: Nitrite Reduction",
		Process:     "NO₂⁻ → N₂O + H₂O",
		Description: "The baton passes to microbes that convert nitrite to nitrous oxide",
		Specialists: "Second-step specialists need more energy investment to maintain their enzymes",
		RealWorld:   "Becomes active when moderate food supports coexistence of specialists",
		X:           37.5,
		Y:           50,
		Color:       ColorOMZViolet,
	},
	{
		ID:          StationN2O,
		Key:         "n2o",
		Label:       "N₂O",
		Name:        "Nitrous Oxide",
		Role:        "Step 3: Critical Intermediate",
		Process:     "N₂O → ½N₂ + ½O₂",
		Description: "Greenhouse gas that's 300x more potent than CO₂",
		Specialists: "Third-step specialists compete with multi-step teams for this conversion",
		RealWorld:   "Accumulates when finish line gets crowded - major climate concern",
		X:           62.5,
		Y:           50,
		Color:       ColorCoralCTA,
	},
	{
		ID:          StationN2,
		Key:         "n2",
		Label:       "N₂",
		Name:        "Nitrogen Gas",
		Role:        "Step 4: Safe Completion",
		Process:     "Final product - completes the denitrification relay",
		Description: "Harmless nitrogen gas released back to atmosphere",
		Specialists: "Multi-step microbes with complete enzyme sets dominate this finish line",
		RealWorld:   "Prevents N₂O escape when the full relay operates efficiently",
		X:           87.5,
		Y:           50,
		Color:       ColorPrimary,
	},
}

// activeCount is the length of the active prefix per tier
var activeCount = [FoodLevelCount]int{1, 2, 4}

// intensityTable holds the tuned intensity of active stations per tier
// Inactive entries are never read; IsActive gates the lookup
var intensityTable = [FoodLevelCount][StationCount]float64{
	FoodLow:    {0.9, DormantIntensity, DormantIntensity, DormantIntensity},
	FoodMedium: {0.8, 0.7, DormantIntensity, DormantIntensity},
	// N2O is boosted above its neighbors: bottleneck buildup at high food
	FoodHigh: {0.9, 0.8, 0.9, 0.7},
}

func (id StationID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("StationID(%d)", int(id))
	}
	return stations[id].Key
}

// Valid reports whether id names one of the four stations
func (id StationID) Valid() bool {
	return id >= StationNO3 && id <= StationN2
}

func mustStation(id StationID) {
	if !id.Valid() {
		panic(fmt.Sprintf("scenario: invalid station id %d", int(id)))
	}
}

// Stations returns a copy of the station table in relay order
func Stations() []Station {
	out := make([]Station, StationCount)
	copy(out, stations[:])
	return out
}

// StationByID returns a copy of one station
func StationByID(id StationID) Station {
	mustStation(id)
	return stations[id]
}

// StationByKey looks a station up by its short key (no3, no2, n2o, n2)
func StationByKey(key string) (Station, bool) {
	for _, s := range stations {
		if s.Key == key {
			return s, true
		}
	}
	return Station{}, false
}

// ActiveStations returns the active prefix of the relay for a tier
func ActiveStations(level FoodLevel) []StationID {
	mustLevel(level)
	n := activeCount[level]
	out := make([]StationID, n)
	for i := range out {
		out[i] = StationID(i)
	}
	return out
}

// IsActive reports whether id lies in the active prefix of level
func IsActive(id StationID, level FoodLevel) bool {
	mustStation(id)
	mustLevel(level)
	return int(id) < activeCount[level]
}

// Intensity returns the visual activity of a station at a tier, in [0,1]
func Intensity(id StationID, level FoodLevel) float64 {
	if !IsActive(id, level) {
		return DormantIntensity
	}
	return intensityTable[level][id]
}
