package material

import (
	"errors"
	"testing"
)

func TestGetSteel(t *testing.T) {
	m, err := Get("steel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "Steel" {
		t.Errorf("expected Steel, got %s", m.Name)
	}
	if m.YieldStrengthMPa != 250 || m.ElasticModulusGPa != 200 {
		t.Errorf("wrong steel properties: %+v", m)
	}
	if m.DensityKgM3 != 7850 || m.CostPerKg != 3.0 || m.CorrosionRating != 2 {
		t.Errorf("wrong steel properties: %+v", m)
	}
}

func TestGetAluminium(t *testing.T) {
	for _, id := range []string{"aluminium", "aluminum", "Aluminium", " ALUMINIUM "} {
		m, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q): unexpected error: %v", id, err)
		}
		if m.Name != "Aluminium" {
			t.Errorf("Get(%q): expected Aluminium, got %s", id, m.Name)
		}
		if m.YieldStrengthMPa != 275 || m.ElasticModulusGPa != 69 {
			t.Errorf("wrong aluminium properties: %+v", m)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("titanium")
	if !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("expected ErrUnknownMaterial, got %v", err)
	}
}

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(all))
	}
	if all[0].Name != "Steel" || all[1].Name != "Aluminium" {
		t.Errorf("wrong order: %s, %s", all[0].Name, all[1].Name)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m, _ := Get("steel")
	m.YieldStrengthMPa = 1
	again, _ := Get("steel")
	if again.YieldStrengthMPa != 250 {
		t.Error("catalog record was mutated through a returned copy")
	}
}
