package repository

import (
	"context"

	"github.com/inotes-app/inotes-backend/internal/domain"
)

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	// FindByID is ownership-scoped: a note that exists but belongs to a
	// different user is reported as not found.
	FindByID(ctx context.Context, userID, id string) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	ExistsID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, userID, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
