package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
)

// Analyze requests a fresh analysis snapshot for a ticker. A backend that
// answers 2xx with an {"error": ...} body is treated as a failed request.
func (c *Client) Analyze(ctx context.Context, ticker string) (*domain.AnalysisResult, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	var res domain.AnalysisResult
	if err := c.getJSON(ctx, "/api/analyze?ticker="+url.QueryEscape(ticker), &res); err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, &APIError{Status: 200, Message: res.Error}
	}
	return &res, nil
}

// History fetches the server-maintained analysis history, most recent first.
func (c *Client) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	var out []domain.HistoryEntry
	if err := c.getJSON(ctx, "/api/history", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Radar fetches the rolling list of currently bullish tickers.
func (c *Client) Radar(ctx context.Context) ([]domain.RadarEntry, error) {
	var out []domain.RadarEntry
	if err := c.getJSON(ctx, "/api/radar", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PersonaPicks fetches the tickers a persona has rated. The persona name is
// query-escaped, so display labels with spaces or punctuation pass through
// unchanged in meaning.
func (c *Client) PersonaPicks(ctx context.Context, persona string) ([]domain.PersonaPick, error) {
	if persona == "" {
		return nil, fmt.Errorf("persona is required")
	}
	escaped := url.QueryEscape(persona)
	var out []domain.PersonaPick
	if err := c.getJSON(ctx, "/api/persona_picks?persona="+escaped, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarketIntelligence fetches the current market movers feed.
func (c *Client) MarketIntelligence(ctx context.Context) ([]domain.MarketMover, error) {
	var out []domain.MarketMover
	if err := c.getJSON(ctx, "/api/market_intelligence", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SectorScout fetches the sector -> ranked picks mapping.
func (c *Client) SectorScout(ctx context.Context) (map[string][]domain.SectorPick, error) {
	out := make(map[string][]domain.SectorPick)
	if err := c.getJSON(ctx, "/api/sector_scout", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitJournal records a trade in the backend journal.
func (c *Client) SubmitJournal(ctx context.Context, entry domain.JournalEntry) error {
	return c.postJSON(ctx, "/api/journal", entry, nil)
}

// Journal fetches the recorded trades for the performance table.
func (c *Client) Journal(ctx context.Context) ([]domain.JournalRecord, error) {
	var out []domain.JournalRecord
	if err := c.getJSON(ctx, "/api/journal", &out); err != nil {
		return nil, err
	}
	return out, nil
}
