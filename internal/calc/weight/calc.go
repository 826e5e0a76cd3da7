package weight

import (
	"fmt"

	"MatSelect/internal/material"
)

type Input struct {
	LengthM float64 `json:"length_m"`
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m"`
}

type Result struct {
	VolumeM3        float64 `json:"volume_m3"`
	SteelMassKg     float64 `json:"steel_mass_kg"`
	AluminiumMassKg float64 `json:"aluminium_mass_kg"`
	Winner          string  `json:"winner"`
	Reason          string  `json:"reason"`
}

// Compare computes the mass of the same geometry in both materials and
// recommends the lighter one.
func Compare(in Input) (Result, error) {
	if in.LengthM <= 0 || in.WidthM <= 0 || in.HeightM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	v := in.WidthM * in.HeightM * in.LengthM
	var ms, ma float64
	for _, mat := range material.All() {
		switch mat.Name {
		case "Steel":
			ms = mat.DensityKgM3 * v
		case "Aluminium":
			ma = mat.DensityKgM3 * v
		}
	}
	res := Result{VolumeM3: v, SteelMassKg: ms, AluminiumMassKg: ma}
	if ma < ms {
		res.Winner = "Aluminium"
		res.Reason = "Lighter, better for weight reduction."
	} else {
		res.Winner = "Steel"
		res.Reason = "Heavier geometry case."
	}
	return res, nil
}
