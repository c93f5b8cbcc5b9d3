// Package archive persists analysis outcomes as date-partitioned Parquet
// files. The scheduled scanner appends one record per analyzed ticker; the
// files are the raw material for offline review of how scores and verdicts
// drifted over time.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/normalize"
)

// Record is the on-disk schema for one analysis outcome.
type Record struct {
	Ticker    string  `parquet:"ticker"`
	Timestamp int64   `parquet:"timestamp,timestamp(millisecond)"` // Unix ms
	Price     float64 `parquet:"price"`
	Consensus string  `parquet:"consensus"`
	Score     float64 `parquet:"score"`
	HasScore  bool    `parquet:"has_score"`
	ScoreTier string  `parquet:"score_tier"`
}

// Archive writes and reads analysis records under a data directory.
// Layout: <dir>/analyses/<YYYY-MM-DD>.parquet
type Archive struct {
	Dir string
}

// New creates an archive rooted at dir.
func New(dir string) *Archive {
	return &Archive{Dir: dir}
}

// FromSnapshot builds a record from a normalized snapshot.
func FromSnapshot(snap normalize.Snapshot, tier string, at time.Time) Record {
	rec := Record{
		Ticker:    strings.ToUpper(snap.Ticker),
		Timestamp: at.UnixMilli(),
		Price:     snap.Price,
		Consensus: snap.Consensus,
		ScoreTier: tier,
	}
	if snap.Score != nil {
		rec.Score = snap.Score.Value
		rec.HasScore = true
	}
	return rec
}

// Append merges records into their day files. Records are deduplicated by
// (ticker, timestamp), newest write wins, and each file stays sorted by time.
func (a *Archive) Append(_ context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	groups := make(map[string][]Record)
	for _, r := range records {
		day := time.UnixMilli(r.Timestamp).UTC().Format("2006-01-02")
		groups[day] = append(groups[day], r)
	}

	for day, incoming := range groups {
		path := a.dayPath(day)

		existing, err := readRecords(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			// An unreadable day file must not be clobbered with a partial rewrite.
			return fmt.Errorf("reading archive for %s: %w", day, err)
		}
		merged := mergeRecords(existing, incoming)

		if err := writeRecords(path, merged); err != nil {
			return fmt.Errorf("writing archive for %s: %w", day, err)
		}
	}
	return nil
}

// ReadDay returns all records archived on the given UTC day, sorted by time.
func (a *Archive) ReadDay(_ context.Context, day time.Time) ([]Record, error) {
	records, err := readRecords(a.dayPath(day.UTC().Format("2006-01-02")))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}

// Days lists the archived day stamps in ascending order.
func (a *Archive) Days(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(a.Dir, "analyses"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var days []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".parquet") {
			days = append(days, strings.TrimSuffix(name, ".parquet"))
		}
	}
	sort.Strings(days)
	return days, nil
}

func (a *Archive) dayPath(day string) string {
	return filepath.Join(a.Dir, "analyses", day+".parquet")
}

func writeRecords(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return parquet.WriteFile(path, records)
}

func readRecords(path string) ([]Record, error) {
	return parquet.ReadFile[Record](path)
}

func mergeRecords(existing, incoming []Record) []Record {
	type key struct {
		ticker string
		ts     int64
	}
	seen := make(map[key]Record, len(existing)+len(incoming))
	for _, r := range existing {
		seen[key{r.Ticker, r.Timestamp}] = r
	}
	for _, r := range incoming {
		seen[key{r.Ticker, r.Timestamp}] = r
	}

	merged := make([]Record, 0, len(seen))
	for _, r := range seen {
		merged = append(merged, r)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Timestamp < merged[j].Timestamp
	})
	return merged
}
