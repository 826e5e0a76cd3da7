package cost

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
	SteelCostRM     float64 `json:"steel_cost_rm"`
	AluminiumCostRM float64 `json:"aluminium_cost_rm"`
	Winner          string  `json:"winner"`
	Reason          string  `json:"reason"`
}

// Compare estimates total cost (mass x cost/kg) of the same geometry
// in both materials and recommends the cheaper one.
func Compare(in Input) (Result, error) {
	if in.LengthM <= 0 || in.WidthM <= 0 || in.HeightM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	v := in.WidthM * in.HeightM * in.LengthM
	var cs, ca float64
	for _, mat := range material.All() {
		total := mat.DensityKgM3 * v * mat.CostPerKg
		switch mat.Name {
		case "Steel":
			cs = total
		case "Aluminium":
			ca = total
		}
	}
	res := Result{VolumeM3: v, SteelCostRM: cs, AluminiumCostRM: ca}
	if cs < ca {
		res.Winner = "Steel"
	} else {
		res.Winner = "Aluminium"
	}
	res.Reason = "Cheaper."
	return res, nil
}
