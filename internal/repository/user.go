package repository

import (
	"context"

	"github.com/inotes-app/inotes-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail matches the email exactly, case-sensitive.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsID(ctx context.Context, id string) (bool, error)
	UpdateInfo(ctx context.Context, id, email, firstName, lastName string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
