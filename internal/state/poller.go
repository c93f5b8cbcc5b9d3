package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/client"
)

// IntelPoller periodically refreshes the market-intelligence feed. It runs
// until its context is cancelled, so tearing down the view stops the timer
// and nothing leaks.
type IntelPoller struct {
	api      *client.Client
	state    *AppState
	log      *slog.Logger
	interval time.Duration
}

// NewIntelPoller creates a poller. The production interval is 30 seconds.
func NewIntelPoller(api *client.Client, st *AppState, log *slog.Logger, interval time.Duration) *IntelPoller {
	return &IntelPoller{api: api, state: st, log: log, interval: interval}
}

// Run polls once immediately, then on every tick. Blocks until ctx is
// cancelled. Fetch failures log and keep the previous feed.
func (p *IntelPoller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("market intelligence poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *IntelPoller) poll(ctx context.Context) {
	movers, err := p.api.MarketIntelligence(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Warn("refreshing market intelligence", "error", err)
		}
		return
	}
	p.state.ReplaceIntel(movers)
}
