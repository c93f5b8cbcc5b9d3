// Command mastermind-tui is the interactive terminal dashboard. It renders
// the current analysis, the vital-signs grid, the analyst council and the
// auxiliary lists, refreshing market intelligence in the background.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/client"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/classify"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/config"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/render"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/report"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/state"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/store"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/util"
)

// Styles.
var (
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	amberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tickerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// toneStyle maps a color tone to its terminal style.
func toneStyle(t classify.Tone) lipgloss.Style {
	switch t.Token() {
	case "green":
		return greenStyle
	case "red":
		return redStyle
	default:
		return amberStyle
	}
}

// Messages.
type tickMsg time.Time

type analyzeDoneMsg struct {
	ticker string
	err    error
}

func tickCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model.
type model struct {
	api    *client.Client
	st     *state.AppState
	sync   *state.Synchronizer
	db     *store.SQLiteStore
	logger *slog.Logger

	sizer   render.SizerInput
	input   string
	loading bool
	status  string

	viewport      viewport.Model
	ready         bool
	width, height int
	pollCancel    context.CancelFunc
}

func initialModel(api *client.Client, st *state.AppState, sync *state.Synchronizer, db *store.SQLiteStore, sizer render.SizerInput, cancel context.CancelFunc, logger *slog.Logger) model {
	return model{
		api:        api,
		st:         st,
		sync:       sync,
		db:         db,
		logger:     logger,
		sizer:      sizer,
		status:     "type a ticker and press enter",
		pollCancel: cancel,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) analyzeCmd(ticker string) tea.Cmd {
	api, st, sync, db, sizer, logger := m.api, m.st, m.sync, m.db, m.sizer, m.logger
	return func() tea.Msg {
		ctx := context.Background()
		res, err := api.Analyze(ctx, ticker)
		if err != nil {
			return analyzeDoneMsg{ticker: ticker, err: err}
		}
		st.ApplyResult(res, sizer)
		if err := db.RecordSearch(ctx, ticker); err != nil {
			logger.Warn("recording search", "ticker", ticker, "error", err)
		}
		// History and radar ride along after every successful analysis.
		go sync.Refresh(ctx)
		return analyzeDoneMsg{ticker: res.Ticker}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.pollCancel()
			return m, tea.Quit
		case "q":
			if m.input == "" {
				m.pollCancel()
				return m, tea.Quit
			}
			m.input += "Q"
			return m, nil
		case "esc":
			m.input = ""
			return m, nil
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		case "enter":
			if m.input == "" || m.loading {
				return m, nil
			}
			ticker := m.input
			m.input = ""
			m.loading = true
			m.status = "analyzing " + strings.ToUpper(ticker) + "..."
			return m, m.analyzeCmd(ticker)
		case "+":
			if m.input == "" {
				m.sizer.RiskPercent += 0.5
				m.applyResize()
			}
			return m, nil
		case "-":
			// Mid-entry a hyphen belongs to the ticker (BRK-B); risk
			// adjustment only applies with an empty input buffer.
			if m.input != "" {
				m.input += "-"
				return m, nil
			}
			if m.sizer.RiskPercent > 0.5 {
				m.sizer.RiskPercent -= 0.5
				m.applyResize()
			}
			return m, nil
		case "ctrl+w":
			m.toggleWatch()
			return m, nil
		case "ctrl+e":
			m.exportReport()
			return m, nil
		default:
			if len(msg.String()) == 1 {
				r := msg.String()[0]
				if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '.' || r == '-' {
					m.input += strings.ToUpper(msg.String())
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 2
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.MouseWheelEnabled = true
			m.ready = true
			m.viewport.SetContent(m.renderContent())
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		return m, nil

	case analyzeDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("%s: %v", msg.ticker, msg.err)
			m.logger.Warn("analysis failed", "ticker", msg.ticker, "error", msg.err)
		} else {
			m.status = msg.ticker + " analyzed"
			// Persist risk prefs as they were when this analysis rendered.
			m.savePrefs()
		}
		if m.ready {
			m.viewport.SetContent(m.renderContent())
			m.viewport.GotoTop()
		}
		return m, nil

	case tickMsg:
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}
		return m, tickCmd()

	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *model) applyResize() {
	if _, ok := m.st.Resize(m.sizer); ok {
		m.savePrefs()
	}
	m.status = fmt.Sprintf("risk %.1f%% of %.0f", m.sizer.RiskPercent, m.sizer.AccountSize)
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
}

// toggleWatch flips the analyzed ticker's watchlist membership.
func (m *model) toggleWatch() {
	snap, ok := m.st.Snapshot()
	if !ok {
		m.status = "nothing analyzed yet"
		return
	}
	ctx := context.Background()
	watch, err := m.db.Watchlist(ctx)
	if err != nil {
		m.status = fmt.Sprintf("watchlist: %v", err)
		return
	}
	watched := false
	for _, t := range watch {
		if t == snap.Ticker {
			watched = true
			break
		}
	}
	if watched {
		err = m.db.RemoveFromWatchlist(ctx, snap.Ticker)
	} else {
		err = m.db.AddToWatchlist(ctx, snap.Ticker)
	}
	if err != nil {
		m.status = fmt.Sprintf("watchlist: %v", err)
		return
	}
	if watched {
		m.status = snap.Ticker + " removed from watchlist"
	} else {
		m.status = snap.Ticker + " added to watchlist"
	}
}

// exportReport writes the markdown report for the current analysis to the
// working directory.
func (m *model) exportReport() {
	snap, ok := m.st.Snapshot()
	if !ok {
		m.status = "nothing analyzed yet"
		return
	}
	now := time.Now()
	path := fmt.Sprintf("%s-report-%s.md", strings.ToLower(snap.Ticker), now.Format("2006-01-02"))
	if err := os.WriteFile(path, []byte(report.Markdown(snap, now)), 0644); err != nil {
		m.status = fmt.Sprintf("export: %v", err)
		return
	}
	m.status = "report written to " + path
}

func (m *model) savePrefs() {
	ctx := context.Background()
	if err := m.db.SetPref(ctx, store.PrefAccountSize,
		strconv.FormatFloat(m.sizer.AccountSize, 'f', -1, 64)); err != nil {
		m.logger.Warn("saving prefs", "error", err)
		return
	}
	if err := m.db.SetPref(ctx, store.PrefRiskPercent,
		strconv.FormatFloat(m.sizer.RiskPercent, 'f', -1, 64)); err != nil {
		m.logger.Warn("saving prefs", "error", err)
	}
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	header := headerStyle.Width(m.width).Render(" ANALYST MASTERMIND ")
	input := "> " + m.input
	if m.loading {
		input = "analyzing..."
	}
	footer := dimStyle.Render(fmt.Sprintf("%s   %s   [enter analyze, +/- risk, ^W watch, ^E export, q quit]", input, m.status))
	return header + "\n" + m.viewport.View() + "\n" + footer
}

func main() {
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

	// The TUI owns the terminal; logs go to a file instead.
	logPath := fmt.Sprintf("/tmp/mastermind-tui-%s.log", time.Now().Format("2006-01-02"))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelInfo}))
	util.SetDefault(logger)

	db, err := store.NewSQLiteStore(cfg.Storage.SQLitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	sizer := render.SizerInput{
		AccountSize: cfg.UI.AccountSize,
		RiskPercent: cfg.UI.RiskPercent,
	}
	ctx := context.Background()
	if v, ok, err := db.GetPref(ctx, store.PrefAccountSize); err == nil && ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			sizer.AccountSize = f
		}
	}
	if v, ok, err := db.GetPref(ctx, store.PrefRiskPercent); err == nil && ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			sizer.RiskPercent = f
		}
	}

	api := client.NewClient(cfg.Backend.BaseURL)
	st := state.New()
	sync := state.NewSynchronizer(api, st, logger)

	pollCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller := state.NewIntelPoller(api, st, logger,
		time.Duration(cfg.Scan.IntelPollSeconds)*time.Second)
	go poller.Run(pollCtx)

	p := tea.NewProgram(
		initialModel(api, st, sync, db, sizer, cancel, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
