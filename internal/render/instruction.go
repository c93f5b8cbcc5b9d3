// Package render computes render instructions from a normalized snapshot.
// Every builder is a pure function of its inputs; nothing here touches a
// screen. A display adapter (console, TUI) applies the instructions and maps
// color tones to its own palette. Invisible sections carry Visible=false and
// adapters skip them wholesale.
package render

import (
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/classify"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/spark"
)

// SummaryCard is the ticker/price/consensus header. Always visible.
type SummaryCard struct {
	Ticker    string
	PriceText string
	Consensus string
	Tone      classify.Tone
}

// PriorityBanner shows the single recommended action.
type PriorityBanner struct {
	Visible    bool
	Action     string
	Reasoning  string
	Confidence string
	Tone       classify.Tone
}

// ScoreBadge shows the 0-100 master score with its band.
type ScoreBadge struct {
	Visible   bool
	ValueText string
	Label     string
	Tier      classify.ScoreTier
	Tone      classify.Tone
}

// SizerResult is the position-size calculation output. Available=false is
// the explicit "unavailable" sentinel; Shares is only meaningful when set.
type SizerResult struct {
	Available    bool
	Shares       int
	RiskAmount   float64
	PerShareRisk float64
}

// PyramidRow is one add-on leg of the pyramiding sub-plan.
type PyramidRow struct {
	PriceText string
	Size      string
}

// TradePlanCard shows entry/target/stop, the optional pyramiding schedule
// and the live position-size calculation.
type TradePlanCard struct {
	Visible      bool
	EntryZone    string
	Target       string
	StopLoss     string
	RiskPerShare string
	Pyramid      []PyramidRow
	Sizer        SizerResult
}

// MetricCard is one vital-signs tile. History, when at least two points
// long, feeds a sparkline in the adapter.
type MetricCard struct {
	ID         string
	Title      string
	ValueText  string
	StatusText string
	Tone       classify.Tone
	History    []float64
}

// VitalsPanel is the grid of technical-indicator tiles.
type VitalsPanel struct {
	Visible bool
	Cards   []MetricCard
}

// OptionsCard shows options intelligence; hidden when the ticker has no
// options chain.
type OptionsCard struct {
	Visible        bool
	Sentiment      string
	Tone           classify.Tone
	MaxOIStrike    string
	PCRatio        string
	AvgIV          string
	Recommendation string
}

// ListItem is a named, toned row in the pattern and VPA lists.
type ListItem struct {
	Name        string
	Status      string
	Description string
	Tone        classify.Tone
}

// PatternList shows detected chart patterns.
type PatternList struct {
	Visible bool
	Items   []ListItem
}

// VPAList shows volume-price-analysis findings.
type VPAList struct {
	Visible bool
	Items   []ListItem
}

// StrategyCard is one actionable setup with its book citations.
type StrategyCard struct {
	Type        string
	Description string
	Books       []string
}

// StrategyList shows actionable strategies, or EmptyText when none.
type StrategyList struct {
	Visible   bool
	Items     []StrategyCard
	EmptyText string
}

// PersonaCard is one council member's card. ID is the stable persona name,
// carried on the card itself so adapters never bind by grid position.
type PersonaCard struct {
	ID        string
	Name      string
	Rating    string
	Bucket    classify.RatingBucket
	Tone      classify.Tone
	Reasons   []string
	BooksText string
}

// CouncilGrid shows one card per persona. An empty grid is still visible.
type CouncilGrid struct {
	Visible bool
	Cards   []PersonaCard
}

// NewsCard is one headline with its derived sentiment and topic tags.
type NewsCard struct {
	Title     string
	Summary   string
	Date      string
	URL       string
	Sentiment classify.Sentiment
	Topic     string
}

// NewsFeed shows recent headlines, or EmptyText when none.
type NewsFeed struct {
	Visible   bool
	Items     []NewsCard
	EmptyText string
}

// TrendTag is one timeframe-alignment pill.
type TrendTag struct {
	Name  string
	Value string
	Tone  classify.Tone
}

// TrendTags shows monthly/weekly/daily alignment and the relative-strength
// leader flag.
type TrendTags struct {
	Visible  bool
	Tags     []TrendTag
	RSLeader bool
}

// Dashboard is the complete render instruction set for one analysis: every
// region computed independently, so one absent section never hides another.
type Dashboard struct {
	Summary    SummaryCard
	Priority   PriorityBanner
	Score      ScoreBadge
	Plan       TradePlanCard
	Vitals     VitalsPanel
	Options    OptionsCard
	Patterns   PatternList
	VPA        VPAList
	Strategies StrategyList
	Council    CouncilGrid
	News       NewsFeed
	Trend      TrendTags
	Chart      spark.Series
}
