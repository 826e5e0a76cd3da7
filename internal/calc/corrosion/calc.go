package corrosion

import (
	"fmt"

	"MatSelect/internal/material"
)

type Environment string

const (
	EnvIndoor  Environment = "indoor"
	EnvOutdoor Environment = "outdoor"
	EnvCoastal Environment = "coastal"
)

type Input struct {
	Environment Environment `json:"environment"`
}

type Result struct {
	Environment     Environment `json:"environment"`
	SteelRating     int         `json:"steel_rating"`
	AluminiumRating int         `json:"aluminium_rating"`
	Winner          string      `json:"winner"`
	Reason          string      `json:"reason"`
}

// Recommend picks a material for the service environment. Aluminium
// only wins in corrosive conditions; elsewhere coated steel is the
// cost-effective default.
func Recommend(in Input) (Result, error) {
	switch in.Environment {
	case EnvIndoor, EnvOutdoor, EnvCoastal:
	default:
		return Result{}, fmt.Errorf("unknown environment %q", in.Environment)
	}

	res := Result{Environment: in.Environment}
	for _, mat := range material.All() {
		switch mat.Name {
		case "Steel":
			res.SteelRating = mat.CorrosionRating
		case "Aluminium":
			res.AluminiumRating = mat.CorrosionRating
		}
	}
	if in.Environment == EnvCoastal {
		res.Winner = "Aluminium"
		res.Reason = "Better corrosion resistance."
	} else {
		res.Winner = "Steel"
		res.Reason = "Cost-effective; corrosion can be protected with coating."
	}
	return res, nil
}
