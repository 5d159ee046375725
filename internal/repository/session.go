package repository

import (
	"context"
	"time"

	"github.com/inotes-app/inotes-backend/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	FindByHash(ctx context.Context, hash string) (*domain.Session, error)
	ExistsHash(ctx context.Context, hash string) (bool, error)
	ExtendExpiry(ctx context.Context, hash string, expiry time.Time) error
	DeleteByHash(ctx context.Context, hash string) error
	DeleteByUser(ctx context.Context, userID string) error
	// DeleteExpired removes sessions whose expiry is before now and
	// reports how many it deleted. Rows deleted by a concurrent sweep
	// are skipped, not errors.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
