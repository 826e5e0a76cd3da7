package recommend

import (
	"math"
	"strconv"

	beam "MatSelect/internal/calc/beam"
	"MatSelect/internal/material"
)

// MetricRow is one line of the result table shown by the front-end.
type MetricRow struct {
	Metric    string `json:"metric"`
	Steel     string `json:"steel"`
	Aluminium string `json:"aluminium"`
}

type Comparison struct {
	Input          beam.Input     `json:"input"`
	Steel          beam.Result    `json:"steel"`
	Aluminium      beam.Result    `json:"aluminium"`
	Table          []MetricRow    `json:"table"`
	Recommendation Recommendation `json:"recommendation"`
}

// Compare evaluates one beam in both catalog materials and picks a
// winner. The two evaluations are independent and run sequentially.
func Compare(in beam.Input) (Comparison, error) {
	steelMat, err := material.Get("steel")
	if err != nil {
		return Comparison{}, err
	}
	aluMat, err := material.Get("aluminium")
	if err != nil {
		return Comparison{}, err
	}

	steelRes, err := beam.Evaluate(in, steelMat)
	if err != nil {
		return Comparison{}, err
	}
	aluRes, err := beam.Evaluate(in, aluMat)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		Input:          in,
		Steel:          steelRes,
		Aluminium:      aluRes,
		Table:          buildTable(steelRes, aluRes),
		Recommendation: SelectWinner(steelRes, aluRes),
	}, nil
}

func buildTable(steel, alu beam.Result) []MetricRow {
	row := func(metric string, s, a float64) MetricRow {
		return MetricRow{Metric: metric, Steel: formatMetric(s), Aluminium: formatMetric(a)}
	}
	return []MetricRow{
		row("Mmax(Nm)", steel.MaxMomentNm, alu.MaxMomentNm),
		row("I(m4)", steel.MomentOfInertiaM4, alu.MomentOfInertiaM4),
		row("Stress(MPa)", steel.StressMPa, alu.StressMPa),
		row("FOS", steel.FOS, alu.FOS),
		row("Deflection(mm)", steel.DeflectionMM, alu.DeflectionMM),
		row("Allowable(mm)", steel.AllowableMM, alu.AllowableMM),
		{Metric: "PASS?", Steel: strconv.FormatBool(steel.Passes), Aluminium: strconv.FormatBool(alu.Passes)},
		row("Volume(m3)", steel.VolumeM3, alu.VolumeM3),
		row("Mass(kg)", steel.MassKg, alu.MassKg),
		row("Cost(RM)", steel.CostRM, alu.CostRM),
	}
}

// Rounding happens only here, at display time.
func formatMetric(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
