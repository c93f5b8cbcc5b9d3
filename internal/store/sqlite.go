package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// Compile-time interface checks.
var _ PrefStore = (*SQLiteStore)(nil)
var _ SearchStore = (*SQLiteStore)(nil)
var _ WatchlistStore = (*SQLiteStore)(nil)

// recentSearchCap bounds the recents list.
const recentSearchCap = 10

// SQLiteStore implements all local persistence on a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and ensures the
// schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS prefs (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS recent_searches (
	ticker     TEXT PRIMARY KEY,
	searched_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS watchlist (
	ticker   TEXT PRIMARY KEY,
	added_at INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SetPref stores or overwrites a preference value.
func (s *SQLiteStore) SetPref(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)`, key, value)
	return err
}

// GetPref retrieves a preference value.
func (s *SQLiteStore) GetPref(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// RecordSearch pushes a ticker to the front of the recents list. Re-searching
// an existing ticker refreshes its position; the list is trimmed to the cap.
func (s *SQLiteStore) RecordSearch(ctx context.Context, ticker string) error {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return fmt.Errorf("ticker is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO recent_searches (ticker, searched_at)
		 VALUES (?, unixepoch('subsec') * 1000)`, ticker); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM recent_searches WHERE ticker NOT IN (
			SELECT ticker FROM recent_searches
			ORDER BY searched_at DESC LIMIT ?)`, recentSearchCap); err != nil {
		return err
	}
	return tx.Commit()
}

// RecentSearches returns recents, most recent first.
func (s *SQLiteStore) RecentSearches(ctx context.Context) ([]string, error) {
	return s.queryTickers(ctx,
		`SELECT ticker FROM recent_searches ORDER BY searched_at DESC`)
}

// AddToWatchlist adds a ticker; re-adding keeps the original position.
func (s *SQLiteStore) AddToWatchlist(ctx context.Context, ticker string) error {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO watchlist (ticker, added_at)
		 VALUES (?, unixepoch('subsec') * 1000)`, ticker)
	return err
}

// RemoveFromWatchlist removes a ticker if present.
func (s *SQLiteStore) RemoveFromWatchlist(ctx context.Context, ticker string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM watchlist WHERE ticker = ?`, strings.ToUpper(strings.TrimSpace(ticker)))
	return err
}

// Watchlist returns all watched tickers in insertion order.
func (s *SQLiteStore) Watchlist(ctx context.Context) ([]string, error) {
	return s.queryTickers(ctx,
		`SELECT ticker FROM watchlist ORDER BY added_at ASC`)
}

func (s *SQLiteStore) queryTickers(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
