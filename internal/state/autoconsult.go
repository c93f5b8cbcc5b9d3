package state

import (
	"context"
	"log/slog"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/client"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/render"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/util"
)

// ConsultResult is the per-ticker outcome of an auto-consult batch.
type ConsultResult struct {
	Ticker    string
	Consensus string
	Score     float64
	ScoreOK   bool
	Err       error
}

// AutoConsult re-analyzes a group of tickers strictly sequentially, paced by
// a fixed-interval limiter. The pacing is the system's only backpressure
// toward the backend and must never be parallelized. Each successful
// response fully replaces the dashboard, same as a manual analysis.
type AutoConsult struct {
	api     *client.Client
	state   *AppState
	log     *slog.Logger
	limiter *util.RateLimiter
	sizer   render.SizerInput
}

// NewAutoConsult creates a batch runner allowing perMinute requests per
// minute. The production rate is 120/min, i.e. one request each 500ms.
func NewAutoConsult(api *client.Client, st *AppState, log *slog.Logger, perMinute int, sizer render.SizerInput) *AutoConsult {
	return &AutoConsult{
		api:     api,
		state:   st,
		log:     log,
		limiter: util.NewRateLimiter(perMinute),
		sizer:   sizer,
	}
}

// Run consults every ticker in order. A failed ticker records its error and
// the batch moves on; only context cancellation stops the run early.
func (a *AutoConsult) Run(ctx context.Context, tickers []string) []ConsultResult {
	results := make([]ConsultResult, 0, len(tickers))

	for _, ticker := range tickers {
		if err := a.limiter.Wait(ctx); err != nil {
			results = append(results, ConsultResult{Ticker: ticker, Err: err})
			return results
		}

		res, err := a.api.Analyze(ctx, ticker)
		if err != nil {
			a.log.Warn("auto-consult failed", "ticker", ticker, "error", err)
			results = append(results, ConsultResult{Ticker: ticker, Err: err})
			if ctx.Err() != nil {
				return results
			}
			continue
		}

		a.state.ApplyResult(res, a.sizer)

		r := ConsultResult{Ticker: res.Ticker, Consensus: res.Consensus}
		if res.MasterScore != nil {
			r.Score = res.MasterScore.Value
			r.ScoreOK = true
		}
		results = append(results, r)
	}
	return results
}
