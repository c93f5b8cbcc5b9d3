// Package domain defines the wire types exchanged with the Mastermind
// analysis backend and the strategy tracker service. An AnalysisResult is a
// per-request snapshot: it is decoded once, treated as immutable, and fully
// replaced by the next analysis.
package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexValue holds a backend field that may arrive as a JSON number or as a
// unit-suffixed string such as "1.3x", "62%" or "$150.25". The raw text form
// is preserved; numeric interpretation happens at normalization time.
type FlexValue struct {
	Raw string
}

// UnmarshalJSON accepts numbers, strings, and null.
func (f *FlexValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		f.Raw = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		f.Raw = v
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	f.Raw = n.String()
	return nil
}

// MarshalJSON re-encodes the value as a number when it parses cleanly,
// otherwise as the original string.
func (f FlexValue) MarshalJSON() ([]byte, error) {
	if f.Raw == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(f.Raw, 64); err == nil {
		return []byte(f.Raw), nil
	}
	return json.Marshal(f.Raw)
}

// IsZero reports whether no value was supplied.
func (f FlexValue) IsZero() bool { return f.Raw == "" }

// AnalysisResult is the payload returned by GET /api/analyze. Only Ticker,
// CurrentPrice and Consensus are guaranteed; every other section is optional
// and may be null or missing entirely.
type AnalysisResult struct {
	Ticker       string `json:"ticker"`
	CurrentPrice float64 `json:"current_price"`
	Consensus    string `json:"consensus"`

	Priority    *Priority            `json:"priority,omitempty"`
	MasterScore *MasterScore         `json:"master_score,omitempty"`
	TradePlan   *TradePlan           `json:"trade_plan,omitempty"`
	Tech        *TechnicalIndicators `json:"technical_indicators,omitempty"`
	Options     *OptionsIntel        `json:"options_intel,omitempty"`

	Patterns    []Pattern                 `json:"patterns,omitempty"`
	VPAAnalysis []VPASignal               `json:"vpa_analysis,omitempty"`
	Strategies  []Strategy                `json:"actionable_strategies,omitempty"`
	Personas    map[string]PersonaOpinion `json:"personas,omitempty"`
	RecentNews  []NewsItem                `json:"recent_news,omitempty"`
	ChartData   []Bar                     `json:"chart_data,omitempty"`

	// Error is set when the backend reports a semantic failure despite a
	// 2xx response.
	Error string `json:"error,omitempty"`
}

// Priority is the single recommended action for the ticker.
type Priority struct {
	Action     string    `json:"action"`
	Reasoning  string    `json:"reasoning"`
	Confidence FlexValue `json:"confidence"`
}

// MasterScore is the 0-100 composite ranking.
type MasterScore struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// TradePlan holds entry/exit levels as display strings (possibly ranged or
// currency-formatted) plus an optional pyramiding schedule.
type TradePlan struct {
	EntryZone    string       `json:"entry_zone"`
	Target       string       `json:"target"`
	StopLoss     string       `json:"stop_loss"`
	RiskPerShare FlexValue    `json:"risk_per_share,omitempty"`
	Pyramiding   []PyramidLeg `json:"pyramiding,omitempty"`
}

// PyramidLeg is one add-on step of a pyramiding sub-plan.
type PyramidLeg struct {
	Price FlexValue `json:"price"`
	Size  string    `json:"size"`
}

// Indicator is the generic {value, status, history} tuple used by the vital
// signs panel. Status and Trend are backend-supplied labels; History feeds
// the sparkline.
type Indicator struct {
	Value   FlexValue `json:"value"`
	Status  string    `json:"status,omitempty"`
	Trend   string    `json:"trend,omitempty"`
	History []float64 `json:"history,omitempty"`
	Color   string    `json:"color,omitempty"`
}

// VWAPIndicator extends Indicator with a deviation leaf and a full series
// used as a chart overlay. Deviation is optional even when vwap is present.
type VWAPIndicator struct {
	Indicator
	Deviation FlexValue `json:"deviation,omitempty"`
	Series    []float64 `json:"series,omitempty"`
}

// MTFAlignment carries the monthly/weekly/daily trend labels.
type MTFAlignment struct {
	Monthly string `json:"monthly"`
	Weekly  string `json:"weekly"`
	Daily   string `json:"daily"`
}

// TechnicalIndicators is the optional vital-signs section.
type TechnicalIndicators struct {
	Squeeze     *Indicator     `json:"squeeze,omitempty"`
	RSI         *Indicator     `json:"rsi,omitempty"`
	RelVolume   *Indicator     `json:"rel_volume,omitempty"`
	MACD        *Indicator     `json:"macd,omitempty"`
	ATR         *Indicator     `json:"atr,omitempty"`
	ADX         *Indicator     `json:"adx,omitempty"`
	VWAP        *VWAPIndicator `json:"vwap,omitempty"`
	MTF         *MTFAlignment  `json:"mtf_alignment,omitempty"`
	RelStrength *Indicator     `json:"relative_strength,omitempty"`
}

// OptionsIntel is the optional options section; the card only renders when
// HasOptions is true.
type OptionsIntel struct {
	HasOptions     bool      `json:"has_options"`
	Sentiment      string    `json:"sentiment"`
	MaxOIStrike    FlexValue `json:"max_oi_strike"`
	PCRatio        FlexValue `json:"pc_ratio"`
	AvgIV          FlexValue `json:"avg_iv"`
	Recommendation string    `json:"recommendation,omitempty"`
}

// Pattern is a detected chart pattern.
type Pattern struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// VPASignal is a volume-price-analysis finding with a directional bias.
type VPASignal struct {
	Name        string `json:"name"`
	Bias        string `json:"bias"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
}

// Strategy is an actionable setup card with book citations.
type Strategy struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Books       []string `json:"books"`
}

// PersonaOpinion is one council member's view. The persona name (the map
// key) is reused as a stable identifier and as a query-string value.
type PersonaOpinion struct {
	Rating  string   `json:"rating"`
	Reasons []string `json:"reasons"`
	Books   []string `json:"books"`
	Details string   `json:"details,omitempty"`
}

// NewsItem is a headline from the recent-news feed.
type NewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
	Date    string `json:"date"`
	URL     string `json:"url"`
}

// Bar is a single OHLCV candle, ordered by Time ascending within ChartData.
type Bar struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// HistoryEntry is one row of the server-maintained analysis history.
type HistoryEntry struct {
	Ticker    string `json:"ticker"`
	Consensus string `json:"consensus"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
}

// RadarEntry is a history entry on the bullish radar, with its score.
type RadarEntry struct {
	HistoryEntry
	MasterScore float64 `json:"master_score"`
}

// PersonaPick is one ticker a persona has rated, from /api/persona_picks.
type PersonaPick struct {
	Ticker string `json:"ticker"`
	Rating string `json:"rating"`
	Date   string `json:"date"`
}

// MarketMover is one row of the market-intelligence feed.
type MarketMover struct {
	Ticker        string  `json:"ticker"`
	MasterScore   float64 `json:"master_score"`
	PotentialGain float64 `json:"potential_gain"`
	Date          string  `json:"date"`
}

// SectorPick is one ranked stock inside a sector-scout group.
type SectorPick struct {
	Ticker    string  `json:"ticker"`
	Price     float64 `json:"price"`
	Score     float64 `json:"score"`
	Label     string  `json:"label"`
	TopRating string  `json:"top_rating"`
}

// JournalEntry is the POST /api/journal payload.
type JournalEntry struct {
	Ticker       string  `json:"ticker"`
	Action       string  `json:"action"`
	EntryPrice   float64 `json:"entry_price"`
	Shares       int     `json:"shares"`
	StopLoss     float64 `json:"stop_loss"`
	Target       float64 `json:"target"`
	PsychChecked bool    `json:"psych_checked"`
}

// JournalRecord is one closed or open trade row from GET /api/journal.
type JournalRecord struct {
	JournalEntry
	Date   string  `json:"date"`
	Status string  `json:"status,omitempty"`
	PnL    float64 `json:"pnl,omitempty"`
}

// TrackerStock is one row from the external strategy tracker's /api/stocks.
type TrackerStock struct {
	Ticker   string `json:"ticker"`
	Strategy string `json:"strategy"`
}
