package recommend

import (
	beam "MatSelect/internal/calc/beam"
)

// Rationale tags carried alongside every recommendation.
const (
	RationaleAluFails      = "ALU_FAILS_SERVICEABILITY"
	RationaleSteelFails    = "STEEL_FAILS_SERVICEABILITY"
	RationaleCostEffective = "COST_EFFECTIVE"
	RationaleLighter       = "LIGHTER_OR_WEIGHT_PRIORITY"
)

type Recommendation struct {
	Winner    string `json:"winner"`
	Rationale string `json:"rationale"`
	Reason    string `json:"reason"`
}

// SelectWinner applies the decision policy: a material that passes
// serviceability beats one that does not; otherwise the cheaper one
// wins. When aluminium wins the tie-break the label speaks of weight
// even though the comparison is on cost. That mismatch is inherited
// from the published policy and is kept as-is.
func SelectWinner(steel, alu beam.Result) Recommendation {
	switch {
	case steel.Passes && !alu.Passes:
		return Recommendation{
			Winner:    "Steel",
			Rationale: RationaleAluFails,
			Reason:    "Aluminium fails deflection/serviceability.",
		}
	case alu.Passes && !steel.Passes:
		return Recommendation{
			Winner:    "Aluminium",
			Rationale: RationaleSteelFails,
			Reason:    "Steel fails deflection/serviceability.",
		}
	case steel.CostRM < alu.CostRM:
		return Recommendation{
			Winner:    "Steel",
			Rationale: RationaleCostEffective,
			Reason:    "More cost-effective.",
		}
	default:
		return Recommendation{
			Winner:    "Aluminium",
			Rationale: RationaleLighter,
			Reason:    "Lighter / may be preferred if weight is priority.",
		}
	}
}
