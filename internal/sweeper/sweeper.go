// Package sweeper runs the background purge of expired sessions and
// password-reset tokens. It complements the per-request sweeps: both
// are best-effort, and neither coordinates with the other, so a row may
// be gone by the time a sweep reaches it. That is treated as success.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inotes-app/inotes-backend/internal/metrics"
	"github.com/inotes-app/inotes-backend/internal/repository"
	"github.com/robfig/cron/v3"
)

type Sweeper struct {
	sessions    repository.SessionRepository
	resetTokens repository.ResetTokenRepository
	logger      *slog.Logger
	cron        *cron.Cron
}

func New(sessions repository.SessionRepository, resetTokens repository.ResetTokenRepository, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		sessions:    sessions,
		resetTokens: resetTokens,
		logger:      logger.With("component", "sweeper"),
		cron:        cron.New(),
	}
}

// Start schedules sweeps per the cron spec and blocks until ctx is done.
func (s *Sweeper) Start(ctx context.Context, schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.logger.Info("sweeper started", "schedule", schedule)

	<-ctx.Done()
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("sweeper stopped")
	return nil
}

// Sweep deletes expired sessions and reset tokens once. Failures are
// logged, not propagated: the next run simply picks up the leftovers.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := time.Now()

	swept, err := s.sessions.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("sweep sessions", "error", err)
	} else if swept > 0 {
		metrics.SessionsSweptTotal.Add(float64(swept))
		s.logger.Info("swept expired sessions", "count", swept)
	}

	swept, err = s.resetTokens.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("sweep reset tokens", "error", err)
	} else if swept > 0 {
		metrics.ResetTokensSweptTotal.Add(float64(swept))
		s.logger.Info("swept expired reset tokens", "count", swept)
	}
}
