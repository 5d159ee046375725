package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inotes-app/inotes-backend/internal/domain"
	"github.com/inotes-app/inotes-backend/internal/repository"
)

const (
	// ContextUserID and ContextSessionHash are the gin context keys the
	// session middleware populates for downstream handlers.
	ContextUserID      = "userID"
	ContextSessionHash = "sessionHash"
)

const (
	errInvalidSession = "Invalid session"
	errInternalServer = "Internal server error"
)

// Session guards protected routes. It resolves the bearer token to a
// session, slides the expiry forward by a week, and injects the user ID
// into the gin context.
//
// The current expiry is deliberately not checked before extending: an
// expired session that a sweep has not yet removed still authenticates.
func Session(sessions repository.SessionRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": fmt.Sprintf("Expected (Bearer <token>). Received: %s", header),
			})
			return
		}

		hash := strings.TrimPrefix(header, "Bearer ")

		session, err := sessions.FindByHash(c.Request.Context(), hash)
		if err != nil {
			if errors.Is(err, domain.ErrSessionInvalid) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errInvalidSession})
				return
			}
			logger.ErrorContext(c.Request.Context(), "session lookup", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
			return
		}

		err = sessions.ExtendExpiry(c.Request.Context(), hash, time.Now().Add(domain.SessionTTL))
		if err != nil {
			// The row can vanish between lookup and extend if a sweep
			// got there first.
			if errors.Is(err, domain.ErrSessionInvalid) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errInvalidSession})
				return
			}
			logger.ErrorContext(c.Request.Context(), "session extend", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextSessionHash, hash)
		c.Next()
	}
}
