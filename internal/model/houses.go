package model

import "fmt"

// HouseSystem is the single-character code selecting a house division
// scheme, passed through to the ephemeris provider unchanged.
type HouseSystem byte

// Supported house system codes.
const (
	Placidus      HouseSystem = 'P'
	Koch          HouseSystem = 'K'
	Porphyrius    HouseSystem = 'O'
	Regiomontanus HouseSystem = 'R'
	Campanus      HouseSystem = 'C'
	Equal         HouseSystem = 'A'
	VehlowEqual   HouseSystem = 'V'
	WholeSign     HouseSystem = 'W'
)

// ParseHouseSystem resolves a one-character house system code.
func ParseHouseSystem(code string) (HouseSystem, error) {
	if len(code) != 1 {
		return 0, fmt.Errorf("house system must be a single character, got %q", code)
	}
	switch hs := HouseSystem(code[0]); hs {
	case Placidus, Koch, Porphyrius, Regiomontanus, Campanus, Equal, VehlowEqual, WholeSign:
		return hs, nil
	default:
		return 0, fmt.Errorf("unknown house system: %q", code)
	}
}

// Angles holds the four named chart angles.
type Angles struct {
	Ascendant float64
	Midheaven float64
	ARMC      float64
	Vertex    float64
}

// HouseSet is a complete house computation for one instant and place:
// twelve cusps plus the four angles. Immutable once produced.
type HouseSet struct {
	Cusps  [12]float64
	Angles Angles
}

// Ascendant returns the first house cusp.
func (h HouseSet) Ascendant() float64 {
	return h.Cusps[0]
}

// Cusp returns the cusp longitude for houses numbered 1 through 12.
func (h HouseSet) Cusp(house int) (float64, error) {
	if house < 1 || house > 12 {
		return 0, fmt.Errorf("house number must be 1-12, got %d", house)
	}
	return h.Cusps[house-1], nil
}

// BodyHouses pairs a body's label with the house set computed for that
// body's own timestamp. Produced by the house batch pipeline.
type BodyHouses struct {
	Body   Body
	Houses HouseSet
}
