package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inotes-app/inotes-backend/internal/metrics"
	"github.com/inotes-app/inotes-backend/internal/repository"
)

// SweepSessions purges expired sessions before the request proceeds.
// The sweep is best-effort: a failure is logged and the request goes on.
func SweepSessions(sessions repository.SessionRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		swept, err := sessions.DeleteExpired(c.Request.Context(), time.Now())
		if err != nil {
			logger.WarnContext(c.Request.Context(), "sweep sessions", "error", err)
		} else if swept > 0 {
			metrics.SessionsSweptTotal.Add(float64(swept))
		}
		c.Next()
	}
}

// SweepResetTokens purges expired password-reset tokens, same contract
// as SweepSessions.
func SweepResetTokens(resetTokens repository.ResetTokenRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		swept, err := resetTokens.DeleteExpired(c.Request.Context(), time.Now())
		if err != nil {
			logger.WarnContext(c.Request.Context(), "sweep reset tokens", "error", err)
		} else if swept > 0 {
			metrics.ResetTokensSweptTotal.Add(float64(swept))
		}
		c.Next()
	}
}
