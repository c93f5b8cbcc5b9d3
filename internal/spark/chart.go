package spark

import (
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/classify"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/normalize"
)

// Level is a horizontal overlay line on the candle chart.
type Level struct {
	Name  string
	Price float64
	Tone  classify.Tone
}

// Marker is an arrow annotation placed at a single timestamp. Up markers sit
// below the bar pointing up (bullish), down markers above pointing down.
type Marker struct {
	Time  int64
	Label string
	Tone  classify.Tone
	Up    bool
}

// Series is the complete drawing description for the price/volume chart:
// the raw candles plus every overlay, decoupled from any rendering surface.
type Series struct {
	Bars    []domain.Bar
	Levels  []Level
	VWAP    []float64
	Markers []Marker
}

// BuildChart assembles a chart series from an ordered OHLCV sequence, an
// optional trade plan (entry/target/stop lines) and an optional VWAP
// overlay. Markers are placed at the most recent timestamp only, one per
// detected pattern or VPA signal, oriented by the signal's bias.
func BuildChart(bars []domain.Bar, plan *normalize.Plan, vwap []float64, patterns []domain.Pattern, vpa []domain.VPASignal) Series {
	s := Series{Bars: bars, VWAP: vwap}
	if len(bars) == 0 {
		return s
	}

	if plan != nil {
		if plan.EntryOK {
			s.Levels = append(s.Levels, Level{Name: "Entry", Price: plan.Entry, Tone: classify.ToneNeutral})
		}
		if plan.TargetOK {
			s.Levels = append(s.Levels, Level{Name: "Target", Price: plan.TargetPx, Tone: classify.ToneBullish})
		}
		if plan.StopOK {
			s.Levels = append(s.Levels, Level{Name: "Stop", Price: plan.Stop, Tone: classify.ToneBearish})
		}
	}

	last := bars[len(bars)-1].Time
	for _, p := range patterns {
		tone := classify.Bias(p.Status)
		s.Markers = append(s.Markers, Marker{
			Time:  last,
			Label: p.Name,
			Tone:  tone,
			Up:    tone != classify.ToneBearish,
		})
	}
	for _, v := range vpa {
		tone := classify.Bias(v.Bias)
		s.Markers = append(s.Markers, Marker{
			Time:  last,
			Label: v.Name,
			Tone:  tone,
			Up:    tone != classify.ToneBearish,
		})
	}
	return s
}
