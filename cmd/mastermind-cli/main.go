// Command mastermind-cli is the one-shot console client: analyze a ticker,
// export its report, run an auto-consult batch over the watchlist, manage
// preferences and the journal. Long-lived interactive use lives in
// mastermind-tui.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/archive"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/client"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/classify"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/config"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/render"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/report"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/state"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/store"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/util"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mastermind-cli <command> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  analyze <ticker>     Run an analysis and print the dashboard\n")
		fmt.Fprintf(os.Stderr, "  consult              Auto-consult every watchlist ticker\n")
		fmt.Fprintf(os.Stderr, "  watch <add|rm|list>  Manage the local watchlist\n")
		fmt.Fprintf(os.Stderr, "  journal <log|list>   Record or list journal trades\n")
		fmt.Fprintf(os.Stderr, "  prefs <show|set>     Show or set account size / risk percent\n")
		fmt.Fprintf(os.Stderr, "  tracker              Show tracker stocks grouped by strategy\n")
		fmt.Fprintf(os.Stderr, "  sector               Show the sector scout rankings\n")
		fmt.Fprintf(os.Stderr, "  picks <persona>      Show a persona's rated tickers\n")
		fmt.Fprintf(os.Stderr, "\n")
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	// .env is optional; real environments set variables directly.
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

	app := &cliApp{
		cfg:    cfg,
		api:    client.NewClient(cfg.Backend.BaseURL),
		logger: logger,
	}

	ctx := context.Background()
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type cliApp struct {
	cfg    *config.Config
	api    *client.Client
	logger *slog.Logger
}

func (a *cliApp) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "analyze":
		return a.analyze(ctx, args)
	case "consult":
		return a.consult(ctx, args)
	case "watch":
		return a.watch(ctx, args)
	case "journal":
		return a.journal(ctx, args)
	case "prefs":
		return a.prefs(ctx, args)
	case "tracker":
		return a.tracker(ctx)
	case "sector":
		return a.sector(ctx)
	case "picks":
		return a.picks(ctx, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// openStore opens the local SQLite store lazily; commands that never touch
// local state skip it.
func (a *cliApp) openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(a.cfg.Storage.SQLitePath)
}

// sizerInput resolves account size and risk percent, stored prefs over
// config defaults.
func (a *cliApp) sizerInput(ctx context.Context, db *store.SQLiteStore) render.SizerInput {
	in := render.SizerInput{
		AccountSize: a.cfg.UI.AccountSize,
		RiskPercent: a.cfg.UI.RiskPercent,
	}
	if db == nil {
		return in
	}
	if v, ok, err := db.GetPref(ctx, store.PrefAccountSize); err == nil && ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			in.AccountSize = f
		}
	}
	if v, ok, err := db.GetPref(ctx, store.PrefRiskPercent); err == nil && ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			in.RiskPercent = f
		}
	}
	return in
}

func (a *cliApp) analyze(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	reportPath := fs.String("report", "", "write the Markdown report to this path")
	noArchive := fs.Bool("no-archive", false, "skip archiving the outcome")
	fs.Parse(args)
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: analyze <ticker>")
	}
	ticker := fs.Arg(0)

	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := a.api.Analyze(ctx, ticker)
	if err != nil {
		return err
	}
	if err := db.RecordSearch(ctx, ticker); err != nil {
		a.logger.Warn("recording search", "ticker", ticker, "error", err)
	}

	st := state.New()
	d := st.ApplyResult(res, a.sizerInput(ctx, db))
	printDashboard(d)

	snap, _ := st.Snapshot()

	if *reportPath != "" {
		md := report.Markdown(snap, time.Now())
		if err := os.WriteFile(*reportPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("\nreport written to %s\n", *reportPath)
	}

	if !*noArchive {
		arch := archive.New(a.cfg.Storage.ArchiveDir)
		tier := ""
		if snap.Score != nil {
			tier = classify.MasterScore(snap.Score.Value).Label()
		}
		rec := archive.FromSnapshot(snap, tier, time.Now())
		if err := arch.Append(ctx, []archive.Record{rec}); err != nil {
			a.logger.Warn("archiving analysis", "ticker", ticker, "error", err)
		}
	}
	return nil
}

func (a *cliApp) consult(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("consult", flag.ExitOnError)
	fs.Parse(args)

	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	tickers := fs.Args()
	if len(tickers) == 0 {
		tickers, err = db.Watchlist(ctx)
		if err != nil {
			return err
		}
	}
	if len(tickers) == 0 {
		fmt.Println("watchlist is empty; add tickers with: watch add <ticker>")
		return nil
	}

	st := state.New()
	ac := state.NewAutoConsult(a.api, st, a.logger,
		a.cfg.Consult.RatePerMin, a.sizerInput(ctx, db))

	fmt.Printf("consulting %d tickers...\n\n", len(tickers))
	results := ac.Run(ctx, tickers)

	fmt.Printf("%-8s %-28s %s\n", "Ticker", "Consensus", "Score")
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-8s %-28s %s\n", r.Ticker, "failed: "+r.Err.Error(), "-")
			continue
		}
		score := "-"
		if r.ScoreOK {
			score = fmt.Sprintf("%.0f", r.Score)
		}
		fmt.Printf("%-8s %-28s %s\n", r.Ticker, r.Consensus, score)
	}
	return nil
}

func (a *cliApp) watch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: watch <add|rm|list> [ticker]")
	}

	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: watch add <ticker>")
		}
		if err := db.AddToWatchlist(ctx, args[1]); err != nil {
			return err
		}
		fmt.Printf("added %s\n", args[1])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: watch rm <ticker>")
		}
		if err := db.RemoveFromWatchlist(ctx, args[1]); err != nil {
			return err
		}
		fmt.Printf("removed %s\n", args[1])
	case "list":
		tickers, err := db.Watchlist(ctx)
		if err != nil {
			return err
		}
		for _, t := range tickers {
			fmt.Println(t)
		}
	default:
		return fmt.Errorf("unknown watch subcommand: %s", args[0])
	}
	return nil
}

func (a *cliApp) journal(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: journal <log|list>")
	}

	switch args[0] {
	case "log":
		fs := flag.NewFlagSet("journal log", flag.ExitOnError)
		ticker := fs.String("ticker", "", "ticker symbol")
		action := fs.String("action", "BUY", "BUY or SELL")
		entry := fs.Float64("entry", 0, "entry price")
		shares := fs.Int("shares", 0, "share count")
		stop := fs.Float64("stop", 0, "stop loss")
		target := fs.Float64("target", 0, "target price")
		psych := fs.Bool("psych", false, "psychology checklist completed")
		fs.Parse(args[1:])

		if *ticker == "" || *entry <= 0 || *shares <= 0 {
			return fmt.Errorf("journal log requires -ticker, -entry and -shares")
		}
		err := a.api.SubmitJournal(ctx, domain.JournalEntry{
			Ticker:       *ticker,
			Action:       *action,
			EntryPrice:   *entry,
			Shares:       *shares,
			StopLoss:     *stop,
			Target:       *target,
			PsychChecked: *psych,
		})
		if err != nil {
			return err
		}
		fmt.Println("journal entry recorded")
	case "list":
		records, err := a.api.Journal(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %-6s %10s %8s %10s %10s\n",
			"Ticker", "Action", "Entry", "Shares", "Stop", "Target")
		for _, r := range records {
			fmt.Printf("%-8s %-6s %10.2f %8d %10.2f %10.2f\n",
				r.Ticker, r.Action, r.EntryPrice, r.Shares, r.StopLoss, r.Target)
		}
	default:
		return fmt.Errorf("unknown journal subcommand: %s", args[0])
	}
	return nil
}

func (a *cliApp) prefs(ctx context.Context, args []string) error {
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(args) == 0 || args[0] == "show" {
		in := a.sizerInput(ctx, db)
		fmt.Printf("account_size: %.2f\nrisk_percent: %.2f\n", in.AccountSize, in.RiskPercent)
		return nil
	}

	if args[0] == "set" {
		fs := flag.NewFlagSet("prefs set", flag.ExitOnError)
		account := fs.Float64("account", 0, "account size")
		risk := fs.Float64("risk", 0, "risk percent")
		fs.Parse(args[1:])

		if *account > 0 {
			if err := db.SetPref(ctx, store.PrefAccountSize, strconv.FormatFloat(*account, 'f', -1, 64)); err != nil {
				return err
			}
		}
		if *risk > 0 {
			if err := db.SetPref(ctx, store.PrefRiskPercent, strconv.FormatFloat(*risk, 'f', -1, 64)); err != nil {
				return err
			}
		}
		fmt.Println("preferences saved")
		return nil
	}
	return fmt.Errorf("unknown prefs subcommand: %s", args[0])
}

func (a *cliApp) tracker(ctx context.Context) error {
	tc := client.NewTrackerClient(a.cfg.Tracker.BaseURL)
	stocks, err := tc.Stocks(ctx)
	if err != nil {
		return err
	}

	groups := client.GroupByStrategy(stocks)
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s (%d)\n", name, len(groups[name]))
		for _, t := range groups[name] {
			fmt.Printf("  %s\n", t)
		}
	}
	return nil
}

func (a *cliApp) sector(ctx context.Context) error {
	scout, err := a.api.SectorScout(ctx)
	if err != nil {
		return err
	}

	sectors := make([]string, 0, len(scout))
	for name := range scout {
		sectors = append(sectors, name)
	}
	sort.Strings(sectors)

	for _, name := range sectors {
		fmt.Println(name)
		for _, p := range scout[name] {
			fmt.Printf("  %-8s %10.2f  score %.0f  %s\n", p.Ticker, p.Price, p.Score, p.TopRating)
		}
	}
	return nil
}

func (a *cliApp) picks(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: picks <persona>")
	}
	picks, err := a.api.PersonaPicks(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, p := range picks {
		fmt.Printf("%-8s %-12s %s\n", p.Ticker, p.Rating, p.Date)
	}
	return nil
}
