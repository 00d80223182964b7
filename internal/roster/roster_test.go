package roster

import "testing"

func TestLimitForExactMatch(t *testing.T) {
	limit := LimitFor("valorant")
	if limit.MaxTotal != 7 || limit.MaxSubstitutes != 2 || limit.Starters != 5 {
		t.Fatalf("unexpected limit for valorant: %+v", limit)
	}
}

func TestLimitForSubstringAndCase(t *testing.T) {
	cases := []struct {
		game string
		want Limit
	}{
		{"Counter-Strike 2", Limit{7, 2, 5}},
		{"VALORANT", Limit{7, 2, 5}},
		{"Rocket League 3v3", Limit{5, 2, 3}},
		{"EA FC 25", Limit{3, 2, 1}},
		{"  Dota 2 ", Limit{7, 2, 5}},
	}
	for _, tc := range cases {
		if got := LimitFor(tc.game); got != tc.want {
			t.Fatalf("LimitFor(%q) = %+v, want %+v", tc.game, got, tc.want)
		}
	}
}

func TestLimitForFallback(t *testing.T) {
	for _, game := range []string{"", "chess boxing", "some unknown title"} {
		if got := LimitFor(game); got != DefaultLimit {
			t.Fatalf("LimitFor(%q) = %+v, want default %+v", game, got, DefaultLimit)
		}
	}
}
