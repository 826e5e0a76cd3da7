package beam

import (
	"encoding/json"
	"errors"
	"math"

	"MatSelect/internal/material"
)

var ErrInvalidGeometry = errors.New("invalid geometry")

// Input describes one simply supported beam under a uniformly
// distributed load with a rectangular solid section.
type Input struct {
	SpanM   float64 `json:"span_m"`
	UDLKNM  float64 `json:"udl_kn_m"`
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m"`
}

type Result struct {
	MaxMomentNm       float64 `json:"max_moment_nm"`
	MomentOfInertiaM4 float64 `json:"moment_of_inertia_m4"`
	StressMPa         float64 `json:"stress_mpa"`
	FOS               float64 `json:"fos"`
	DeflectionMM      float64 `json:"deflection_mm"`
	AllowableMM       float64 `json:"allowable_mm"`
	Passes            bool    `json:"passes"`
	VolumeM3          float64 `json:"volume_m3"`
	MassKg            float64 `json:"mass_kg"`
	CostRM            float64 `json:"cost_rm"`
}

// MarshalJSON keeps the payload valid JSON when FOS is infinite
// (zero-load case). The infinity is rendered as the string "inf".
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	if !math.IsInf(r.FOS, 1) {
		return json.Marshal(plain(r))
	}
	return json.Marshal(struct {
		plain
		FOS string `json:"fos"`
	}{plain: plain(r), FOS: "inf"})
}

// Evaluate runs the full adequacy check of one beam in one material:
// bending stress, factor of safety, L/360 serviceability and the
// volume/mass/cost economics. All ten metrics are returned together.
func Evaluate(in Input, mat material.Properties) (Result, error) {
	if in.SpanM <= 0 || in.WidthM <= 0 || in.HeightM <= 0 || in.UDLKNM < 0 {
		return Result{}, ErrInvalidGeometry
	}
	if !finite(in.SpanM) || !finite(in.UDLKNM) || !finite(in.WidthM) || !finite(in.HeightM) {
		return Result{}, ErrInvalidGeometry
	}

	w := in.UDLKNM * 1000.0 // N/m

	// Simply supported beam, UDL: M = w L^2 / 8
	Mmax := w * in.SpanM * in.SpanM / 8.0

	// Rectangular section: I = b h^3 / 12, extreme fiber at h/2
	I := in.WidthM * math.Pow(in.HeightM, 3) / 12.0
	c := in.HeightM / 2.0
	sigmaMPa := Mmax * c / I / 1e6

	fos := math.Inf(1)
	if sigmaMPa > 0 {
		fos = mat.YieldStrengthMPa / sigmaMPa
	}

	// Deflection for UDL: 5 w L^4 / (384 E I), limit L/360
	E := mat.ElasticModulusGPa * 1e9 // Pa
	deflMM := 5.0 * w * math.Pow(in.SpanM, 4) / (384.0 * E * I) * 1000.0
	allowMM := in.SpanM / 360.0 * 1000.0

	V := in.WidthM * in.HeightM * in.SpanM
	mass := mat.DensityKgM3 * V

	res := Result{
		MaxMomentNm:       Mmax,
		MomentOfInertiaM4: I,
		StressMPa:         sigmaMPa,
		FOS:               fos,
		DeflectionMM:      deflMM,
		AllowableMM:       allowMM,
		Passes:            deflMM <= allowMM,
		VolumeM3:          V,
		MassKg:            mass,
		CostRM:            mass * mat.CostPerKg,
	}
	if !finite(res.StressMPa) || !finite(res.DeflectionMM) || !finite(res.CostRM) {
		return Result{}, ErrInvalidGeometry
	}
	return res, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
