package render

import (
	"fmt"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/classify"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/normalize"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/spark"
)

// Empty-state texts, kept verbatim from the shipped client.
const (
	noStrategiesText   = "No specific technical setups detected for current price action."
	noNewsText         = "No recent news catalysts found for this ticker."
	neutralReasonText  = "Maintaining neutral posture based on current data."
	bookFallbackText   = "Market Observation"
	summaryFallback    = "Recent catalyst update."
	summaryTruncateLen = 150
)

// SizerInput is the user's account parameters for the position sizer.
type SizerInput struct {
	AccountSize float64
	RiskPercent float64
}

// Build computes the full dashboard instruction set for a snapshot. It is
// pure and idempotent: re-running it with the same snapshot and sizer input
// reproduces the same instructions.
func Build(snap normalize.Snapshot, sizer SizerInput) Dashboard {
	return Dashboard{
		Summary:    BuildSummary(snap),
		Priority:   BuildPriority(snap),
		Score:      BuildScore(snap),
		Plan:       BuildTradePlan(snap, sizer),
		Vitals:     BuildVitals(snap),
		Options:    BuildOptions(snap),
		Patterns:   BuildPatterns(snap),
		VPA:        BuildVPA(snap),
		Strategies: BuildStrategies(snap),
		Council:    BuildCouncil(snap),
		News:       BuildNews(snap),
		Trend:      BuildTrend(snap),
		Chart:      BuildChart(snap),
	}
}

// BuildSummary renders the header card.
func BuildSummary(snap normalize.Snapshot) SummaryCard {
	return SummaryCard{
		Ticker:    snap.Ticker,
		PriceText: fmt.Sprintf("$%.2f", snap.Price),
		Consensus: snap.Consensus,
		Tone:      classify.Consensus(snap.Consensus),
	}
}

// BuildPriority renders the recommended-action banner.
func BuildPriority(snap normalize.Snapshot) PriorityBanner {
	if snap.Priority == nil {
		return PriorityBanner{}
	}
	tone := classify.Bias(snap.Priority.Action)
	if tone == classify.ToneNeutral {
		tone = classify.Rating(snap.Priority.Action).Tone()
	}
	return PriorityBanner{
		Visible:    true,
		Action:     snap.Priority.Action,
		Reasoning:  snap.Priority.Reasoning,
		Confidence: snap.Priority.Confidence.Raw,
		Tone:       tone,
	}
}

// BuildScore renders the master-score badge.
func BuildScore(snap normalize.Snapshot) ScoreBadge {
	if snap.Score == nil {
		return ScoreBadge{}
	}
	tier := classify.MasterScore(snap.Score.Value)
	return ScoreBadge{
		Visible:   true,
		ValueText: fmt.Sprintf("%.0f", snap.Score.Value),
		Label:     snap.Score.Label,
		Tier:      tier,
		Tone:      tier.Tone(),
	}
}

// BuildTradePlan renders the trade-plan card, including the optional
// pyramiding schedule and the position-size calculation.
func BuildTradePlan(snap normalize.Snapshot, sizer SizerInput) TradePlanCard {
	if snap.Plan == nil {
		return TradePlanCard{}
	}
	p := snap.Plan
	card := TradePlanCard{
		Visible:      true,
		EntryZone:    p.EntryZone,
		Target:       p.Target,
		StopLoss:     p.StopLoss,
		RiskPerShare: p.RiskPerShare,
	}
	for _, leg := range p.Pyramiding {
		card.Pyramid = append(card.Pyramid, PyramidRow{PriceText: leg.Price.Raw, Size: leg.Size})
	}
	card.Sizer = PositionSize(sizer.AccountSize, sizer.RiskPercent, p.Entry, p.Stop)
	return card
}

// BuildVitals renders the technical-indicator tiles. Each tile carries its
// own classification; a missing indicator simply contributes no tile.
func BuildVitals(snap normalize.Snapshot) VitalsPanel {
	if snap.Vitals == nil {
		return VitalsPanel{}
	}
	v := snap.Vitals
	panel := VitalsPanel{Visible: true}

	add := func(c *MetricCard) {
		if c != nil {
			panel.Cards = append(panel.Cards, *c)
		}
	}

	if m := v.Squeeze; m != nil {
		add(&MetricCard{
			ID: "squeeze", Title: "Squeeze",
			ValueText:  displayOrStatus(m),
			StatusText: m.Status,
			Tone:       classify.Squeeze(m.Status),
			History:    m.History,
		})
	}
	if m := v.RSI; m != nil {
		card := MetricCard{ID: "rsi", Title: "RSI", ValueText: m.Display, StatusText: m.Status, History: m.History}
		if m.OK {
			zone := classify.RSI(m.Value)
			card.StatusText = zone.Label()
			card.Tone = zone.Tone()
		}
		add(&card)
	}
	if m := v.RelVolume; m != nil {
		card := MetricCard{ID: "rel_volume", Title: "Rel Volume", ValueText: m.Display, StatusText: m.Status, History: m.History}
		if m.OK {
			level := classify.RelVolume(m.Value)
			card.StatusText = level.Label()
			card.Tone = level.Tone()
		}
		add(&card)
	}
	if m := v.MACD; m != nil {
		tone := classify.Bias(m.Status)
		if tone == classify.ToneNeutral {
			tone = classify.Bias(m.Trend)
		}
		add(&MetricCard{
			ID: "macd", Title: "MACD",
			ValueText:  displayOrStatus(m),
			StatusText: m.Trend,
			Tone:       tone,
			History:    m.History,
		})
	}
	if m := v.ATR; m != nil {
		add(&MetricCard{
			ID: "atr", Title: "ATR",
			ValueText:  m.Display,
			StatusText: m.Status,
			Tone:       classify.ToneNeutral,
			History:    m.History,
		})
	}
	if m := v.ADX; m != nil {
		card := MetricCard{ID: "adx", Title: "ADX", ValueText: m.Display, StatusText: m.Status, History: m.History}
		if m.OK {
			strength := classify.ADX(m.Value)
			card.StatusText = strength.Label()
			card.Tone = strength.Tone()
		}
		add(&card)
	}
	if m := v.VWAP; m != nil {
		card := MetricCard{ID: "vwap", Title: "VWAP", ValueText: m.Display, History: m.History}
		if m.DevDisplay != "" {
			card.StatusText = m.DevDisplay
		}
		switch {
		case m.DevOK && m.Dev > 0:
			card.Tone = classify.ToneBullish
		case m.DevOK && m.Dev < 0:
			card.Tone = classify.ToneBearish
		}
		add(&card)
	}
	return panel
}

// displayOrStatus prefers the numeric display text, falling back to the
// status label for indicators that are purely categorical.
func displayOrStatus(m *normalize.Metric) string {
	if m.Display != "" {
		return m.Display
	}
	return m.Status
}

// BuildOptions renders the options-intelligence card. The section hides
// both when absent and when the ticker has no listed options.
func BuildOptions(snap normalize.Snapshot) OptionsCard {
	o := snap.Options
	if o == nil || !o.HasOptions {
		return OptionsCard{}
	}
	return OptionsCard{
		Visible:        true,
		Sentiment:      o.Sentiment,
		Tone:           classify.Bias(o.Sentiment),
		MaxOIStrike:    o.MaxOIStrike.Raw,
		PCRatio:        o.PCRatio.Raw,
		AvgIV:          o.AvgIV.Raw,
		Recommendation: o.Recommendation,
	}
}

// BuildPatterns renders the chart-pattern list.
func BuildPatterns(snap normalize.Snapshot) PatternList {
	if snap.Patterns == nil {
		return PatternList{}
	}
	list := PatternList{Visible: true}
	for _, p := range snap.Patterns {
		list.Items = append(list.Items, ListItem{
			Name:        p.Name,
			Status:      p.Status,
			Description: p.Description,
			Tone:        classify.Bias(p.Status),
		})
	}
	return list
}

// BuildVPA renders the volume-price-analysis list.
func BuildVPA(snap normalize.Snapshot) VPAList {
	if snap.VPA == nil {
		return VPAList{}
	}
	list := VPAList{Visible: true}
	for _, s := range snap.VPA {
		list.Items = append(list.Items, ListItem{
			Name:        s.Name,
			Status:      s.Bias,
			Description: s.Description,
			Tone:        classify.Bias(s.Bias),
		})
	}
	return list
}

// BuildStrategies renders the actionable-strategy cards.
func BuildStrategies(snap normalize.Snapshot) StrategyList {
	list := StrategyList{Visible: true}
	if len(snap.Strategies) == 0 {
		list.EmptyText = noStrategiesText
		return list
	}
	for _, s := range snap.Strategies {
		list.Items = append(list.Items, StrategyCard{
			Type:        s.Type,
			Description: s.Description,
			Books:       s.Books,
		})
	}
	return list
}

// BuildCouncil renders one card per persona. An empty council renders as an
// empty, visible grid rather than an error.
func BuildCouncil(snap normalize.Snapshot) CouncilGrid {
	grid := CouncilGrid{Visible: true}
	for _, p := range snap.Personas {
		bucket := classify.Rating(p.Rating)
		card := PersonaCard{
			ID:      p.Name,
			Name:    p.Name,
			Rating:  p.Rating,
			Bucket:  bucket,
			Tone:    bucket.Tone(),
			Reasons: p.Reasons,
		}
		if len(card.Reasons) == 0 {
			card.Reasons = []string{neutralReasonText}
		}
		card.BooksText = joinBooks(p.Books)
		grid.Cards = append(grid.Cards, card)
	}
	return grid
}

// joinBooks produces the truncated citation line: at most three titles.
func joinBooks(books []string) string {
	if len(books) == 0 {
		return bookFallbackText
	}
	if len(books) > 3 {
		books = books[:3]
	}
	out := books[0]
	for _, b := range books[1:] {
		out += ", " + b
	}
	return out
}

// BuildNews renders the headline feed with derived sentiment and topic tags.
func BuildNews(snap normalize.Snapshot) NewsFeed {
	feed := NewsFeed{Visible: true}
	if len(snap.News) == 0 {
		feed.EmptyText = noNewsText
		return feed
	}
	for _, n := range snap.News {
		summary := n.Summary
		if summary == "" {
			summary = summaryFallback
		} else if runes := []rune(summary); len(runes) > summaryTruncateLen {
			// Cut on a rune boundary so multi-byte summaries stay valid UTF-8.
			summary = string(runes[:summaryTruncateLen]) + "..."
		}
		feed.Items = append(feed.Items, NewsCard{
			Title:     n.Title,
			Summary:   summary,
			Date:      n.Date,
			URL:       n.URL,
			Sentiment: classify.NewsSentiment(n.Title),
			Topic:     classify.NewsTopic(n.Title),
		})
	}
	return feed
}

// BuildTrend renders the timeframe-alignment pills and the relative-strength
// leader flag.
func BuildTrend(snap normalize.Snapshot) TrendTags {
	if snap.Vitals == nil {
		return TrendTags{}
	}
	v := snap.Vitals
	tags := TrendTags{}
	if v.MTF != nil {
		tags.Visible = true
		for _, tf := range []struct{ name, value string }{
			{"Monthly", v.MTF.Monthly},
			{"Weekly", v.MTF.Weekly},
			{"Daily", v.MTF.Daily},
		} {
			tags.Tags = append(tags.Tags, TrendTag{
				Name:  tf.name,
				Value: tf.value,
				Tone:  classify.Bias(tf.value),
			})
		}
	}
	if v.RelStrength != nil {
		tags.Visible = true
		tags.RSLeader = relStrengthLeader(v.RelStrength)
	}
	return tags
}

func relStrengthLeader(m *normalize.Metric) bool {
	return classify.Bias(m.Status) == classify.ToneBullish ||
		m.Status == "Leader" || m.Trend == "Leader"
}

// BuildChart assembles the candle-chart series with trade-plan and VWAP
// overlays plus pattern/VPA markers.
func BuildChart(snap normalize.Snapshot) spark.Series {
	var vwap []float64
	if snap.Vitals != nil && snap.Vitals.VWAP != nil {
		vwap = snap.Vitals.VWAP.Series
	}
	return spark.BuildChart(snap.Chart, snap.Plan, vwap, snap.Patterns, snap.VPA)
}
