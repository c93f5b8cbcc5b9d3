package render

import "testing"

func TestPositionSize(t *testing.T) {
	cases := []struct {
		name                       string
		account, riskPct, entry, stop float64
		wantShares                 int
		wantAvailable              bool
	}{
		{"reference case", 10000, 2, 100, 90, 20, true},
		{"fractional floor", 10000, 1, 100, 97, 33, true}, // 100/3 -> 33
		{"entry equals stop", 10000, 2, 100, 100, 0, false},
		{"entry below stop", 10000, 2, 90, 100, 0, false},
		{"zero entry", 10000, 2, 0, 90, 0, false},
		{"zero stop", 10000, 2, 100, 0, 0, false},
		{"zero account", 0, 2, 100, 90, 0, false},
		{"zero risk", 10000, 0, 100, 90, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PositionSize(tc.account, tc.riskPct, tc.entry, tc.stop)
			if got.Available != tc.wantAvailable {
				t.Fatalf("Available = %v, want %v", got.Available, tc.wantAvailable)
			}
			if got.Shares != tc.wantShares {
				t.Errorf("Shares = %d, want %d", got.Shares, tc.wantShares)
			}
		})
	}
}

func TestPositionSizeIdempotent(t *testing.T) {
	a := PositionSize(10000, 2, 100, 90)
	b := PositionSize(10000, 2, 100, 90)
	if a != b {
		t.Errorf("recomputation differs: %+v vs %+v", a, b)
	}
	if a.RiskAmount != 200 || a.PerShareRisk != 10 {
		t.Errorf("intermediate values = %+v", a)
	}
}
