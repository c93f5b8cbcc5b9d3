// Package store defines the local persistence interfaces for user-scoped
// client state: preference scalars, the recent-search list, and the local
// watchlist. All of it is small key-value style data owned by this machine;
// analysis history and radar live on the server and never pass through here.
package store

import "context"

// PrefStore persists user preference scalars as string key-value pairs.
type PrefStore interface {
	// SetPref stores or overwrites a preference value.
	SetPref(ctx context.Context, key, value string) error

	// GetPref retrieves a preference value. ok is false when unset.
	GetPref(ctx context.Context, key string) (value string, ok bool, err error)
}

// Preference keys.
const (
	PrefAccountSize = "account_size"
	PrefRiskPercent = "risk_percent"
)

// SearchStore keeps the rolling list of recently analyzed tickers.
type SearchStore interface {
	// RecordSearch pushes a ticker to the front of the recents list,
	// deduplicating and trimming to the retention cap.
	RecordSearch(ctx context.Context, ticker string) error

	// RecentSearches returns recents, most recent first.
	RecentSearches(ctx context.Context) ([]string, error)
}

// WatchlistStore persists the local watchlist used by auto-consult and the
// scheduled scanner.
type WatchlistStore interface {
	// AddToWatchlist adds a ticker; adding an existing ticker is a no-op.
	AddToWatchlist(ctx context.Context, ticker string) error

	// RemoveFromWatchlist removes a ticker if present.
	RemoveFromWatchlist(ctx context.Context, ticker string) error

	// Watchlist returns all watched tickers in insertion order.
	Watchlist(ctx context.Context) ([]string, error)
}
