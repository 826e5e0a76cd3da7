package element

import "testing"

func TestRecommendPriorities(t *testing.T) {
	cases := []struct {
		priority Priority
		winner   string
	}{
		{PriorityWeight, "Aluminium"},
		{PriorityCorrosion, "Aluminium"},
		{PriorityStrength, "Steel"},
		{PriorityCost, "Steel"},
	}
	for _, tc := range cases {
		for _, el := range []Element{ElementBeam, ElementColumn, ElementSlab, ElementTruss, ElementFrame} {
			res, err := Recommend(Input{Element: el, Priority: tc.priority})
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", el, tc.priority, err)
			}
			if res.Winner != tc.winner {
				t.Errorf("%s/%s: got %s, want %s", el, tc.priority, res.Winner, tc.winner)
			}
		}
	}
}

func TestRecommendUnknownElement(t *testing.T) {
	if _, err := Recommend(Input{Element: "arch", Priority: PriorityCost}); err == nil {
		t.Error("expected error for unknown element")
	}
}

func TestRecommendUnknownPriority(t *testing.T) {
	if _, err := Recommend(Input{Element: ElementBeam, Priority: "aesthetics"}); err == nil {
		t.Error("expected error for unknown priority")
	}
}
