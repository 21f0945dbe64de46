package lidarr

import (
	"context"

	"golang.org/x/time/rate"
)

// pacer enforces a minimum spacing between consecutive outbound requests so
// the client never hammers the Lidarr instance. A nil limiter means
// throttling is disabled.
type pacer struct {
	limiter *rate.Limiter
}

// newPacer creates a pacer allowing perSecond dispatches per second with no
// bursting. Zero or negative disables throttling entirely.
func newPacer(perSecond float64) *pacer {
	if perSecond <= 0 {
		return &pacer{}
	}
	return &pacer{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// acquire blocks until the next dispatch is permitted or the context is
// cancelled. The limiter's internal reservation is what advances the shared
// state, so concurrent callers cannot both slip inside the minimum interval.
func (p *pacer) acquire(ctx context.Context) error {
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
