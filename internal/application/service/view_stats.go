package service

import "context"

// ViewStats reads the accumulated view total for a portfolio. Counters are
// incremented out-of-band by the worker consuming view events.
type ViewStats interface {
	Get(ctx context.Context, portfolioID string) (int64, error)
}
