package beam

import (
	"errors"
	"math"
	"strings"
	"testing"

	"MatSelect/internal/material"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol*math.Max(1, math.Abs(want)) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

// Default front-end geometry: L=6 m, w=12 kN/m, b=0.10 m, h=0.20 m.
func defaultInput() Input {
	return Input{SpanM: 6, UDLKNM: 12, WidthM: 0.10, HeightM: 0.20}
}

func TestEvaluateSteelDefaultGeometry(t *testing.T) {
	mat, _ := material.Get("steel")
	res, err := Evaluate(defaultInput(), mat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	approx(t, "Mmax", res.MaxMomentNm, 54000, 1e-12)
	approx(t, "I", res.MomentOfInertiaM4, 6.666666666666667e-5, 1e-9)
	approx(t, "Stress", res.StressMPa, 81.0, 1e-9)
	approx(t, "FOS", res.FOS, 250.0/81.0, 1e-9)
	approx(t, "Deflection", res.DeflectionMM, 15.1875, 1e-9)
	approx(t, "Allowable", res.AllowableMM, 16.666666666666668, 1e-9)
	if !res.Passes {
		t.Error("steel should pass serviceability for the default geometry")
	}
	approx(t, "Volume", res.VolumeM3, 0.12, 1e-9)
	approx(t, "Mass", res.MassKg, 942, 1e-9)
	approx(t, "Cost", res.CostRM, 2826, 1e-9)
}

func TestEvaluateAluminiumDefaultGeometry(t *testing.T) {
	mat, _ := material.Get("aluminium")
	res, err := Evaluate(defaultInput(), mat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Stress is material independent for fixed geometry and load.
	approx(t, "Stress", res.StressMPa, 81.0, 1e-9)
	approx(t, "FOS", res.FOS, 275.0/81.0, 1e-9)
	// Deflection scales by E_steel/E_alu = 200/69.
	approx(t, "Deflection", res.DeflectionMM, 15.1875*200.0/69.0, 1e-9)
	if res.Passes {
		t.Error("aluminium should fail serviceability for the default geometry")
	}
	approx(t, "Mass", res.MassKg, 324, 1e-9)
	approx(t, "Cost", res.CostRM, 3888, 1e-9)
}

func TestEvaluateZeroLoad(t *testing.T) {
	in := defaultInput()
	in.UDLKNM = 0
	for _, id := range []string{"steel", "aluminium"} {
		mat, _ := material.Get(id)
		res, err := Evaluate(in, mat)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", id, err)
		}
		if res.MaxMomentNm != 0 || res.StressMPa != 0 {
			t.Errorf("%s: expected zero moment and stress, got %v / %v", id, res.MaxMomentNm, res.StressMPa)
		}
		if !math.IsInf(res.FOS, 1) {
			t.Errorf("%s: FOS should be +Inf at zero stress, got %v", id, res.FOS)
		}
		if res.DeflectionMM != 0 || !res.Passes {
			t.Errorf("%s: zero load must deflect 0 and pass, got %v / %v", id, res.DeflectionMM, res.Passes)
		}
		if res.CostRM <= 0 {
			t.Errorf("%s: economics must still be computed, got cost %v", id, res.CostRM)
		}
	}
}

func TestEvaluateInvalidGeometry(t *testing.T) {
	mat, _ := material.Get("steel")
	cases := []struct {
		name string
		in   Input
	}{
		{"zero span", Input{SpanM: 0, UDLKNM: 12, WidthM: 0.1, HeightM: 0.2}},
		{"negative width", Input{SpanM: 6, UDLKNM: 12, WidthM: -0.1, HeightM: 0.2}},
		{"zero height", Input{SpanM: 6, UDLKNM: 12, WidthM: 0.1, HeightM: 0}},
		{"negative load", Input{SpanM: 6, UDLKNM: -1, WidthM: 0.1, HeightM: 0.2}},
		{"nan span", Input{SpanM: math.NaN(), UDLKNM: 12, WidthM: 0.1, HeightM: 0.2}},
		{"inf load", Input{SpanM: 6, UDLKNM: math.Inf(1), WidthM: 0.1, HeightM: 0.2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Evaluate(tc.in, mat); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestEvaluatePassBoundaryProperty(t *testing.T) {
	mat, _ := material.Get("steel")
	inputs := []Input{
		{SpanM: 6, UDLKNM: 12, WidthM: 0.10, HeightM: 0.20},
		{SpanM: 6, UDLKNM: 13.2, WidthM: 0.10, HeightM: 0.20},
		{SpanM: 8, UDLKNM: 5, WidthM: 0.15, HeightM: 0.30},
		{SpanM: 2, UDLKNM: 40, WidthM: 0.05, HeightM: 0.10},
		{SpanM: 10, UDLKNM: 0, WidthM: 0.20, HeightM: 0.40},
	}
	for _, in := range inputs {
		res, err := Evaluate(in, mat)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", in, err)
		}
		if res.DeflectionMM < 0 || res.AllowableMM < 0 {
			t.Errorf("negative deflection values for %+v: %+v", in, res)
		}
		if res.Passes != (res.DeflectionMM <= res.AllowableMM) {
			t.Errorf("passes flag inconsistent for %+v: %+v", in, res)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	mat, _ := material.Get("aluminium")
	first, err := Evaluate(defaultInput(), mat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Evaluate(defaultInput(), mat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("results differ between identical calls:\n%+v\n%+v", first, second)
	}
}

func TestResultMarshalInfiniteFOS(t *testing.T) {
	in := defaultInput()
	in.UDLKNM = 0
	mat, _ := material.Get("steel")
	res, _ := Evaluate(in, mat)

	b, err := res.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"fos":"inf"`) {
		t.Errorf("infinite FOS not rendered as string: %s", b)
	}
}

func TestResultMarshalFiniteFOS(t *testing.T) {
	mat, _ := material.Get("steel")
	res, _ := Evaluate(defaultInput(), mat)

	b, err := res.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(b), `"fos":"`) {
		t.Errorf("finite FOS should stay numeric: %s", b)
	}
}
