package scenario

import "fmt"

// Compound is the molecule carried by a particle
type Compound int

const (
	CompoundNO3 Compound = iota
	CompoundNO2
	CompoundN2O
	CompoundN2
)

type compoundInfo struct {
	name  string
	label string
	glyph rune
	color RGB
}

var compounds = [StationCount]compoundInfo{
	CompoundNO3: {"NO3", "NO₃⁻", '³', ColorTealGlow},
	CompoundNO2: {"NO2", "NO₂⁻", '²', ColorOMZViolet},
	CompoundN2O: {"N2O", "N₂O", 'O', ColorCoralCTA},
	CompoundN2:  {"N2", "N₂", '₂', ColorPrimary},
}

func (c Compound) Valid() bool {
	return c >= CompoundNO3 && c <= CompoundN2
}

func mustCompound(c Compound) {
	if !c.Valid() {
		panic(fmt.Sprintf("scenario: invalid compound %d", int(c)))
	}
}

func (c Compound) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Compound(%d)", int(c))
	}
	return compounds[c].name
}

// Label is the display formula with sub/superscripts
func (c Compound) Label() string {
	mustCompound(c)
	return compounds[c].label
}

// Glyph is the single-cell marker used for particles
func (c Compound) Glyph() rune {
	mustCompound(c)
	return compounds[c].glyph
}

func (c Compound) Color() RGB {
	mustCompound(c)
	return compounds[c].color
}

// CompoundAt returns the compound produced at a station; edges carry their source's compound
func CompoundAt(id StationID) Compound {
	mustStation(id)
	return Compound(id)
}
