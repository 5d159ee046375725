package repository

import (
	"context"
	"time"

	"github.com/inotes-app/inotes-backend/internal/domain"
)

type ResetTokenRepository interface {
	Create(ctx context.Context, token *domain.ResetPasswordToken) error
	FindByToken(ctx context.Context, token string) (*domain.ResetPasswordToken, error)
	ExistsToken(ctx context.Context, token string) (bool, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
