package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
)

func TestAnalyzeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analyze", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("ticker"))
		json.NewEncoder(w).Encode(map[string]any{
			"ticker":        "AAPL",
			"current_price": 150.25,
			"consensus":     "Bullish Momentum",
			"master_score":  map[string]any{"value": 82, "label": "Strong"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Analyze(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", res.Ticker)
	assert.Equal(t, 150.25, res.CurrentPrice)
	require.NotNil(t, res.MasterScore)
	assert.Equal(t, 82.0, res.MasterScore.Value)
}

func TestAnalyzeSemanticError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 2xx with an error body still counts as a failed analysis.
		json.NewEncoder(w).Encode(map[string]string{"error": "Could not fetch data for ZZZZ"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Analyze(context.Background(), "ZZZZ")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Could not fetch data for ZZZZ", apiErr.Message)
}

func TestAnalyzeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad ticker"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Analyze(context.Background(), "???")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "bad ticker", apiErr.Message)
}

func TestAnalyzeEmptyTicker(t *testing.T) {
	c := NewClient("http://localhost:0")
	_, err := c.Analyze(context.Background(), "  ")
	require.Error(t, err)
}

func TestHistoryAndRadar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/history":
			json.NewEncoder(w).Encode([]map[string]any{
				{"ticker": "AAPL", "consensus": "Bullish Consensus", "date": "2026-08-30", "timestamp": 1756500000},
			})
		case "/api/radar":
			json.NewEncoder(w).Encode([]map[string]any{
				{"ticker": "NVDA", "consensus": "Strong Bullish Consensus", "date": "2026-08-30", "timestamp": 1756500000, "master_score": 91},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	hist, err := c.History(context.Background())
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "AAPL", hist[0].Ticker)

	radar, err := c.Radar(context.Background())
	require.NoError(t, err)
	require.Len(t, radar, 1)
	assert.Equal(t, 91.0, radar[0].MasterScore)
	assert.Equal(t, "NVDA", radar[0].Ticker)
}

func TestPersonaPicksEscapesName(t *testing.T) {
	var gotPersona string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPersona = r.URL.Query().Get("persona")
		json.NewEncoder(w).Encode([]map[string]any{
			{"ticker": "AAPL", "rating": "Buy", "date": "2026-08-30"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	picks, err := c.PersonaPicks(context.Background(), "Trend Follower")
	require.NoError(t, err)
	require.Len(t, picks, 1)
	// The space survives the round trip through query escaping.
	assert.Equal(t, "Trend Follower", gotPersona)
}

func TestSubmitJournal(t *testing.T) {
	var got domain.JournalEntry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/journal", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	entry := domain.JournalEntry{
		Ticker: "AAPL", Action: "BUY", EntryPrice: 150.25,
		Shares: 20, StopLoss: 140, Target: 170, PsychChecked: true,
	}
	require.NoError(t, c.SubmitJournal(context.Background(), entry))
	assert.Equal(t, entry, got)
}

func TestSectorScout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"Semiconductors": []map[string]any{
				{"ticker": "NVDA", "price": 900.5, "score": 91, "label": "Strong", "top_rating": "Strong Buy"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	scout, err := c.SectorScout(context.Background())
	require.NoError(t, err)
	require.Len(t, scout["Semiconductors"], 1)
	assert.Equal(t, "NVDA", scout["Semiconductors"][0].Ticker)
}

func TestTrackerStocksAndGrouping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stocks", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]string{
			{"ticker": "NVDA", "strategy": "Momentum"},
			{"ticker": "AAPL", "strategy": "Momentum"},
			{"ticker": "KO", "strategy": "Dividend"},
			{"ticker": "XYZ", "strategy": ""},
		})
	}))
	defer srv.Close()

	tc := NewTrackerClient(srv.URL)
	stocks, err := tc.Stocks(context.Background())
	require.NoError(t, err)
	require.Len(t, stocks, 4)

	groups := GroupByStrategy(stocks)
	assert.Equal(t, []string{"AAPL", "NVDA"}, groups["Momentum"])
	assert.Equal(t, []string{"KO"}, groups["Dividend"])
	assert.Equal(t, []string{"XYZ"}, groups["Unassigned"])
}
