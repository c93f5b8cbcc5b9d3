package render

import "math"

// PositionSize computes how many shares keep the dollar risk at riskPct of
// the account, given the plan's entry and stop: floor(A*(R/100) / (E-S)).
// It returns the unavailable sentinel unless E > 0, S > 0 and E > S. The
// computation is pure and recomputed wholesale whenever an input changes;
// nothing accumulates between calls.
func PositionSize(account, riskPct, entry, stop float64) SizerResult {
	if entry <= 0 || stop <= 0 || entry <= stop {
		return SizerResult{}
	}
	if account <= 0 || riskPct <= 0 {
		return SizerResult{}
	}
	riskAmount := account * (riskPct / 100)
	perShare := entry - stop
	return SizerResult{
		Available:    true,
		Shares:       int(math.Floor(riskAmount / perShare)),
		RiskAmount:   riskAmount,
		PerShareRisk: perShare,
	}
}
