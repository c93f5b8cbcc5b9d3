package state

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/client"
)

// Synchronizer refreshes the server-owned auxiliary lists after a
// successful analysis. Both fetches run concurrently and are best-effort:
// a failure logs and leaves the previous list in place, never touching the
// dashboard that was just rendered. There is no retry; the next analysis
// triggers the next attempt.
type Synchronizer struct {
	api   *client.Client
	state *AppState
	log   *slog.Logger
}

// NewSynchronizer creates a synchronizer.
func NewSynchronizer(api *client.Client, st *AppState, log *slog.Logger) *Synchronizer {
	return &Synchronizer{api: api, state: st, log: log}
}

// Refresh fetches history and radar concurrently and wholesale-replaces the
// in-memory lists with whatever succeeded.
func (s *Synchronizer) Refresh(ctx context.Context) {
	var g errgroup.Group

	g.Go(func() error {
		entries, err := s.api.History(ctx)
		if err != nil {
			s.log.Warn("refreshing history", "error", err)
			return nil
		}
		s.state.ReplaceHistory(entries)
		return nil
	})

	g.Go(func() error {
		entries, err := s.api.Radar(ctx)
		if err != nil {
			s.log.Warn("refreshing radar", "error", err)
			return nil
		}
		s.state.ReplaceRadar(entries)
		return nil
	})

	_ = g.Wait()
}
