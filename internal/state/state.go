// Package state holds the in-memory dashboard state. Every mutation is a
// wholesale replace under a mutex; nothing is patched in place, so a reader
// can never observe a half-updated panel and overlapping analyses resolve as
// last-to-render wins.
package state

import (
	"sync"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/normalize"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/render"
)

// AppState is the shared application state: the current dashboard plus the
// auxiliary server-owned lists.
type AppState struct {
	mu        sync.RWMutex
	dashboard *render.Dashboard
	snapshot  *normalize.Snapshot
	history   []domain.HistoryEntry
	radar     []domain.RadarEntry
	intel     []domain.MarketMover
}

// New creates an empty state.
func New() *AppState {
	return &AppState{}
}

// ApplyResult normalizes and renders an analysis result and installs it as
// the current dashboard, replacing the previous one entirely. This is the
// only way a dashboard enters the state.
func (s *AppState) ApplyResult(res *domain.AnalysisResult, sizer render.SizerInput) render.Dashboard {
	snap := normalize.FromResult(res)
	d := render.Build(snap, sizer)

	s.mu.Lock()
	s.snapshot = &snap
	s.dashboard = &d
	s.mu.Unlock()
	return d
}

// Resize re-renders the current snapshot with new sizer inputs, e.g. when
// the user edits account size or risk percent. A pure recomputation: the
// underlying snapshot is untouched.
func (s *AppState) Resize(sizer render.SizerInput) (render.Dashboard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return render.Dashboard{}, false
	}
	d := render.Build(*s.snapshot, sizer)
	s.dashboard = &d
	return d, true
}

// Dashboard returns the current dashboard, if any analysis has completed.
func (s *AppState) Dashboard() (render.Dashboard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dashboard == nil {
		return render.Dashboard{}, false
	}
	return *s.dashboard, true
}

// Snapshot returns the current normalized snapshot, if any.
func (s *AppState) Snapshot() (normalize.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return normalize.Snapshot{}, false
	}
	return *s.snapshot, true
}

// ReplaceHistory installs a fresh history list.
func (s *AppState) ReplaceHistory(entries []domain.HistoryEntry) {
	s.mu.Lock()
	s.history = entries
	s.mu.Unlock()
}

// History returns a copy of the history list.
func (s *AppState) History() []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// ReplaceRadar installs a fresh bullish-radar list.
func (s *AppState) ReplaceRadar(entries []domain.RadarEntry) {
	s.mu.Lock()
	s.radar = entries
	s.mu.Unlock()
}

// Radar returns a copy of the radar list.
func (s *AppState) Radar() []domain.RadarEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RadarEntry, len(s.radar))
	copy(out, s.radar)
	return out
}

// ReplaceIntel installs a fresh market-intelligence feed.
func (s *AppState) ReplaceIntel(movers []domain.MarketMover) {
	s.mu.Lock()
	s.intel = movers
	s.mu.Unlock()
}

// Intel returns a copy of the market-intelligence feed.
func (s *AppState) Intel() []domain.MarketMover {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MarketMover, len(s.intel))
	copy(out, s.intel)
	return out
}
