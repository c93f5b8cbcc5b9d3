// Package normalize turns a raw AnalysisResult into a presence-explicit
// snapshot. Optional sections become nil-checked pointers exactly once, here;
// renderers never probe the raw payload. Absence of a section suppresses only
// that section and is never an error.
package normalize

import (
	"sort"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
)

// Metric is a normalized vital-sign reading. Display keeps the backend's
// text form; Value/OK carry the parsed number when one could be extracted.
type Metric struct {
	Display string
	Value   float64
	OK      bool
	Status  string
	Trend   string
	History []float64
	Color   string
}

// VWAPMetric adds the optional deviation leaf and chart overlay series.
type VWAPMetric struct {
	Metric
	DevDisplay string
	Dev        float64
	DevOK      bool
	Series     []float64
}

// Vitals is the normalized technical-indicators section.
type Vitals struct {
	Squeeze     *Metric
	RSI         *Metric
	RelVolume   *Metric
	MACD        *Metric
	ATR         *Metric
	ADX         *Metric
	VWAP        *VWAPMetric
	MTF         *domain.MTFAlignment
	RelStrength *Metric
}

// Plan is the normalized trade plan: display strings plus the parsed price
// levels used by the position sizer and chart overlays.
type Plan struct {
	EntryZone    string
	Target       string
	StopLoss     string
	RiskPerShare string

	Entry    float64
	EntryOK  bool
	TargetPx float64
	TargetOK bool
	Stop     float64
	StopOK   bool

	Pyramiding []domain.PyramidLeg
}

// Persona pairs a council member's stable name with their opinion. Names are
// sorted for deterministic rendering; each keeps its own identifier so a
// card never depends on iteration position.
type Persona struct {
	Name string
	domain.PersonaOpinion
}

// Snapshot is the fully normalized analysis payload. A nil section pointer
// or nil slice means "absent: hide that region".
type Snapshot struct {
	Ticker    string
	Price     float64
	Consensus string

	Priority *domain.Priority
	Score    *domain.MasterScore
	Plan     *Plan
	Vitals   *Vitals
	Options  *domain.OptionsIntel

	Patterns   []domain.Pattern
	VPA        []domain.VPASignal
	Strategies []domain.Strategy
	Personas   []Persona
	News       []domain.NewsItem
	Chart      []domain.Bar
}

// FromResult normalizes a decoded payload. It is total: any input produces a
// usable snapshot, with malformed leaves marked not-OK rather than failing.
func FromResult(res *domain.AnalysisResult) Snapshot {
	snap := Snapshot{
		Ticker:    res.Ticker,
		Consensus: res.Consensus,
		Price:     res.CurrentPrice,
		Priority:  res.Priority,
		Options:   res.Options,

		Patterns:   res.Patterns,
		VPA:        res.VPAAnalysis,
		Strategies: res.Strategies,
		News:       res.RecentNews,
		Chart:      res.ChartData,
	}

	if res.MasterScore != nil {
		score := *res.MasterScore
		score.Value = clampScore(score.Value)
		snap.Score = &score
	}

	if res.TradePlan != nil {
		snap.Plan = normalizePlan(res.TradePlan)
	}

	if res.Tech != nil {
		snap.Vitals = normalizeVitals(res.Tech)
	}

	if res.Personas != nil {
		snap.Personas = make([]Persona, 0, len(res.Personas))
		for name, op := range res.Personas {
			snap.Personas = append(snap.Personas, Persona{Name: name, PersonaOpinion: op})
		}
		sort.Slice(snap.Personas, func(i, j int) bool {
			return snap.Personas[i].Name < snap.Personas[j].Name
		})
	}

	return snap
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func normalizePlan(p *domain.TradePlan) *Plan {
	plan := &Plan{
		EntryZone:    p.EntryZone,
		Target:       p.Target,
		StopLoss:     p.StopLoss,
		RiskPerShare: p.RiskPerShare.Raw,
		Pyramiding:   p.Pyramiding,
	}
	plan.Entry, plan.EntryOK = FirstNumber(p.EntryZone)
	plan.TargetPx, plan.TargetOK = FirstNumber(p.Target)
	plan.Stop, plan.StopOK = FirstNumber(p.StopLoss)
	return plan
}

func normalizeVitals(t *domain.TechnicalIndicators) *Vitals {
	v := &Vitals{
		Squeeze:     metric(t.Squeeze),
		RSI:         metric(t.RSI),
		RelVolume:   metric(t.RelVolume),
		MACD:        metric(t.MACD),
		ATR:         metric(t.ATR),
		ADX:         metric(t.ADX),
		MTF:         t.MTF,
		RelStrength: metric(t.RelStrength),
	}
	if t.VWAP != nil {
		vm := &VWAPMetric{Series: t.VWAP.Series}
		if m := metric(&t.VWAP.Indicator); m != nil {
			vm.Metric = *m
		}
		vm.DevDisplay = t.VWAP.Deviation.Raw
		vm.Dev, vm.DevOK = ParseLoose(t.VWAP.Deviation.Raw)
		v.VWAP = vm
	}
	return v
}

// metric converts a raw indicator, guarding every optional leaf.
func metric(in *domain.Indicator) *Metric {
	if in == nil {
		return nil
	}
	m := &Metric{
		Display: in.Value.Raw,
		Status:  in.Status,
		Trend:   in.Trend,
		History: in.History,
		Color:   in.Color,
	}
	m.Value, m.OK = ParseLoose(in.Value.Raw)
	return m
}
