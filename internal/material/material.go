package material

import (
	"errors"
	"strings"
)

var ErrUnknownMaterial = errors.New("unknown material")

// Properties of a candidate structural material. Instances are fixed at
// startup and always returned by value.
type Properties struct {
	Name               string  `json:"name"`
	TensileStrengthMPa float64 `json:"tensile_strength_mpa"`
	YieldStrengthMPa   float64 `json:"yield_strength_mpa"`
	ElasticModulusGPa  float64 `json:"elastic_modulus_gpa"`
	DensityKgM3        float64 `json:"density_kg_m3"`
	CostPerKg          float64 `json:"cost_per_kg"` // RM/kg
	CorrosionRating    int     `json:"corrosion_rating"`
}

var (
	steel = Properties{
		Name:               "Steel",
		TensileStrengthMPa: 400,
		YieldStrengthMPa:   250,
		ElasticModulusGPa:  200,
		DensityKgM3:        7850,
		CostPerKg:          3.0,
		CorrosionRating:    2,
	}
	aluminium = Properties{
		Name:               "Aluminium",
		TensileStrengthMPa: 310,
		YieldStrengthMPa:   275,
		ElasticModulusGPa:  69,
		DensityKgM3:        2700,
		CostPerKg:          12.0,
		CorrosionRating:    5,
	}
)

// Get returns the catalog record for "steel" or "aluminium".
func Get(id string) (Properties, error) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "steel":
		return steel, nil
	case "aluminium", "aluminum":
		return aluminium, nil
	}
	return Properties{}, ErrUnknownMaterial
}

// All returns both catalog records, steel first.
func All() []Properties {
	return []Properties{steel, aluminium}
}
