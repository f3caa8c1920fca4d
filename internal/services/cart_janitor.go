package services

import (
	"context"
	"time"

	"langnghe/internal/repositories"
	"langnghe/pkg/logger"
)

// CartJanitor purges cart rows whose session has been idle longer than TTL.
type CartJanitor struct {
	repo     repositories.CartRepository
	ttl      time.Duration
	interval time.Duration
}

func NewCartJanitor(repo repositories.CartRepository, ttl, interval time.Duration) *CartJanitor {
	return &CartJanitor{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
	}
}

// Sweep deletes rows not updated since now minus TTL.
func (j *CartJanitor) Sweep(now time.Time) (int64, error) {
	removed, err := j.repo.DeleteStaleCartItems(now.Add(-j.ttl))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		logger.Info().Int64("removed", removed).Dur("ttl", j.ttl).Msg("Purged stale cart items")
	}
	return removed, nil
}

// Run sweeps once immediately and then every interval until ctx is done.
// A zero TTL disables expiry and Run returns at once.
func (j *CartJanitor) Run(ctx context.Context) {
	if j.ttl <= 0 {
		logger.Info().Msg("Cart session expiry disabled")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		if _, err := j.Sweep(time.Now()); err != nil {
			logger.Error().Err(err).Msg("Cart janitor sweep failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
