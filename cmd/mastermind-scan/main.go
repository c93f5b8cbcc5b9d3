// Command mastermind-scan analyzes the watchlist on a cron schedule and
// archives every outcome. It merges the local watchlist with the strategy
// tracker's tickers, so tracked names are scanned even when nobody watches
// them by hand.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/archive"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/classify"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/client"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/config"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/normalize"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/store"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/util"
)

type scanner struct {
	api     *client.Client
	tracker *client.TrackerClient
	db      *store.SQLiteStore
	arch    *archive.Archive
	limiter *util.RateLimiter
	logger  *slog.Logger
}

// tickers merges the local watchlist with the tracker's stocks,
// deduplicated and sorted.
func (s *scanner) tickers(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)

	watch, err := s.db.Watchlist(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range watch {
		seen[t] = true
	}

	stocks, err := s.tracker.Stocks(ctx)
	if err != nil {
		// The tracker is an optional collaborator; scan what we have.
		s.logger.Warn("fetching tracker stocks", "error", err)
	}
	for _, st := range stocks {
		if t := strings.ToUpper(strings.TrimSpace(st.Ticker)); t != "" {
			seen[t] = true
		}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

// scanOnce analyzes every ticker, paced by the shared limiter, and archives
// the outcomes. Individual failures are logged and skipped.
func (s *scanner) scanOnce(ctx context.Context) {
	tickers, err := s.tickers(ctx)
	if err != nil {
		s.logger.Error("listing scan tickers", "error", err)
		return
	}
	if len(tickers) == 0 {
		s.logger.Info("nothing to scan")
		return
	}

	s.logger.Info("scan starting", "tickers", len(tickers))
	start := time.Now()

	var records []archive.Record
	failed := 0
	for _, ticker := range tickers {
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Info("scan cancelled", "done", len(records), "remaining", len(tickers)-len(records)-failed)
			return
		}

		res, err := s.api.Analyze(ctx, ticker)
		if err != nil {
			s.logger.Warn("analyzing", "ticker", ticker, "error", err)
			failed++
			continue
		}

		snap := normalize.FromResult(res)
		tier := ""
		if snap.Score != nil {
			tier = classify.MasterScore(snap.Score.Value).Label()
		}
		records = append(records, archive.FromSnapshot(snap, tier, time.Now()))
	}

	if err := s.arch.Append(ctx, records); err != nil {
		s.logger.Error("archiving scan", "error", err)
		return
	}
	s.logger.Info("scan complete",
		"archived", len(records), "failed", failed, "elapsed", time.Since(start).String())
}

func main() {
	once := flag.Bool("once", false, "run a single scan and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfgPath := "config/mastermind.yaml"
	if p := os.Getenv("MASTERMIND_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	db, err := store.NewSQLiteStore(cfg.Storage.SQLitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	s := &scanner{
		api:     client.NewClient(cfg.Backend.BaseURL),
		tracker: client.NewTrackerClient(cfg.Tracker.BaseURL),
		db:      db,
		arch:    archive.New(cfg.Storage.ArchiveDir),
		limiter: util.NewRateLimiter(cfg.Consult.RatePerMin),
		logger:  logger,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *once {
		s.scanOnce(ctx)
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.Scan.Cron, func() { s.scanOnce(ctx) }); err != nil {
		fmt.Fprintf(os.Stderr, "invalid scan cron %q: %v\n", cfg.Scan.Cron, err)
		os.Exit(1)
	}
	c.Start()
	logger.Info("scanner scheduled", "cron", cfg.Scan.Cron)

	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	logger.Info("scanner stopped")
}
