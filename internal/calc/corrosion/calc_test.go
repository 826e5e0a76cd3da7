package corrosion

import "testing"

func TestRecommend(t *testing.T) {
	cases := []struct {
		env    Environment
		winner string
	}{
		{EnvIndoor, "Steel"},
		{EnvOutdoor, "Steel"},
		{EnvCoastal, "Aluminium"},
	}
	for _, tc := range cases {
		res, err := Recommend(Input{Environment: tc.env})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.env, err)
		}
		if res.Winner != tc.winner {
			t.Errorf("%s: got %s, want %s", tc.env, res.Winner, tc.winner)
		}
		if res.SteelRating != 2 || res.AluminiumRating != 5 {
			t.Errorf("%s: wrong ratings: %+v", tc.env, res)
		}
	}
}

func TestRecommendUnknownEnvironment(t *testing.T) {
	if _, err := Recommend(Input{Environment: "underwater"}); err == nil {
		t.Error("expected error for unknown environment")
	}
}
