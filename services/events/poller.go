package events

import (
	"context"
	"time"

	"legalaid/utils"

	"go.uber.org/zap"
)

// Poller drives a fixed-interval refetch loop, the low-frequency fallback for
// state that is not a broadcast target (the notification feed). Failed
// fetches are logged and retried on the next tick, never immediately.
type Poller struct {
	Name     string
	Interval time.Duration
	Fetch    func(ctx context.Context) error
}

// DefaultInterval is the poll cadence used when none is set.
const DefaultInterval = 60 * time.Second

// Run blocks until ctx is cancelled, invoking Fetch once per interval. A
// fetch already in flight when cancellation happens is abandoned to its own
// context; its result is never applied by the poller.
func (p *Poller) Run(ctx context.Context) {
	logger := utils.GetLogger()

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("poller stopped", zap.String("name", p.Name))
			return
		case <-ticker.C:
			if err := p.Fetch(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("poll fetch failed",
					zap.String("name", p.Name), zap.Error(err))
			}
		}
	}
}
