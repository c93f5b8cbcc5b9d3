package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/normalize"
)

func TestAppendAndReadDay(t *testing.T) {
	ctx := context.Background()
	a := New(t.TempDir())

	day := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	records := []Record{
		{Ticker: "NVDA", Timestamp: day.Add(time.Hour).UnixMilli(), Price: 900, Consensus: "Bullish Momentum", Score: 88, HasScore: true, ScoreTier: "strong"},
		{Ticker: "AAPL", Timestamp: day.UnixMilli(), Price: 150.25, Consensus: "Bullish Momentum", Score: 82, HasScore: true, ScoreTier: "strong"},
	}
	if err := a.Append(ctx, records); err != nil {
		t.Fatal(err)
	}

	got, err := a.ReadDay(ctx, day)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Ticker != "AAPL" || got[1].Ticker != "NVDA" {
		t.Errorf("records not time-sorted: %+v", got)
	}
}

func TestAppendMergesAndDeduplicates(t *testing.T) {
	ctx := context.Background()
	a := New(t.TempDir())

	ts := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC).UnixMilli()
	first := Record{Ticker: "AAPL", Timestamp: ts, Price: 150, Consensus: "Neutral"}
	if err := a.Append(ctx, []Record{first}); err != nil {
		t.Fatal(err)
	}

	// Same (ticker, timestamp) with fresher data replaces the old record.
	second := first
	second.Consensus = "Bullish Momentum"
	if err := a.Append(ctx, []Record{second}); err != nil {
		t.Fatal(err)
	}

	got, err := a.ReadDay(ctx, time.UnixMilli(ts))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Consensus != "Bullish Momentum" {
		t.Errorf("merged records = %+v", got)
	}
}

func TestAppendRefusesCorruptDayFile(t *testing.T) {
	ctx := context.Background()
	a := New(t.TempDir())

	ts := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	path := a.dayPath(ts.Format("2006-01-02"))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	garbage := []byte("not a parquet file")
	if err := os.WriteFile(path, garbage, 0o644); err != nil {
		t.Fatal(err)
	}

	err := a.Append(ctx, []Record{{Ticker: "AAPL", Timestamp: ts.UnixMilli()}})
	if err == nil {
		t.Fatal("Append must fail instead of overwriting an unreadable day file")
	}
	got, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(got) != string(garbage) {
		t.Error("unreadable day file was rewritten")
	}
}

func TestReadDayMissingFile(t *testing.T) {
	a := New(t.TempDir())
	got, err := a.ReadDay(context.Background(), time.Now())
	if err != nil || got != nil {
		t.Errorf("missing day = %v, %v; want nil, nil", got, err)
	}
}

func TestDays(t *testing.T) {
	ctx := context.Background()
	a := New(t.TempDir())

	for _, d := range []string{"2026-08-30", "2026-08-28"} {
		day, _ := time.Parse("2006-01-02", d)
		err := a.Append(ctx, []Record{{Ticker: "AAPL", Timestamp: day.UnixMilli()}})
		if err != nil {
			t.Fatal(err)
		}
	}

	days, err := a.Days(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 || days[0] != "2026-08-28" || days[1] != "2026-08-30" {
		t.Errorf("days = %v", days)
	}
}

func TestFromSnapshot(t *testing.T) {
	snap := normalize.FromResult(&domain.AnalysisResult{
		Ticker: "aapl", CurrentPrice: 150.25, Consensus: "Bullish Momentum",
		MasterScore: &domain.MasterScore{Value: 82, Label: "Strong"},
	})

	at := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	rec := FromSnapshot(snap, "strong", at)
	if rec.Ticker != "AAPL" || !rec.HasScore || rec.Score != 82 || rec.Timestamp != at.UnixMilli() {
		t.Errorf("record = %+v", rec)
	}

	noScore := FromSnapshot(normalize.FromResult(&domain.AnalysisResult{Ticker: "XYZ"}), "", at)
	if noScore.HasScore {
		t.Error("HasScore must be false without a master score")
	}
}
