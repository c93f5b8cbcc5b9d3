package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
)

// TrackerClient talks to the external strategy tracker service, consumed
// read-only for grouping tickers and feeding auto-consult batches.
type TrackerClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTrackerClient creates a strategy tracker client.
func NewTrackerClient(baseURL string) *TrackerClient {
	return &TrackerClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Stocks fetches all tracked tickers with their assigned strategy.
func (t *TrackerClient) Stocks(ctx context.Context) ([]domain.TrackerStock, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/api/stocks", nil)
	if err != nil {
		return nil, fmt.Errorf("building tracker request: %w", err)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting tracker stocks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode}
	}

	var out []domain.TrackerStock
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding tracker stocks: %w", err)
	}
	return out, nil
}

// GroupByStrategy buckets tracked stocks by strategy name, tickers sorted
// within each group. Stocks without a strategy land under "Unassigned".
func GroupByStrategy(stocks []domain.TrackerStock) map[string][]string {
	groups := make(map[string][]string)
	for _, s := range stocks {
		strategy := s.Strategy
		if strategy == "" {
			strategy = "Unassigned"
		}
		groups[strategy] = append(groups[strategy], s.Ticker)
	}
	for _, tickers := range groups {
		sort.Strings(tickers)
	}
	return groups
}
