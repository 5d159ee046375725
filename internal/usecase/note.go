package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inotes-app/inotes-backend/internal/domain"
	"github.com/inotes-app/inotes-backend/internal/repository"
	"github.com/inotes-app/inotes-backend/internal/token"
)

const notePrefix = "note-"

type NoteUsecase struct {
	notes repository.NoteRepository
}

func NewNoteUsecase(notes repository.NoteRepository) *NoteUsecase {
	return &NoteUsecase{notes: notes}
}

func (u *NoteUsecase) List(ctx context.Context, userID string) ([]domain.Note, error) {
	notes, err := u.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Get returns the note only if it belongs to userID; someone else's
// note is indistinguishable from a missing one.
func (u *NoteUsecase) Get(ctx context.Context, userID, noteID string) (*domain.Note, error) {
	note, err := u.notes.FindByID(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return note, nil
}

func (u *NoteUsecase) Create(ctx context.Context, userID, title, body string) (*domain.Note, error) {
	id, err := token.UniqueID(ctx, notePrefix, idLength, u.notes.ExistsID)
	if err != nil {
		return nil, fmt.Errorf("generate note id: %w", err)
	}

	now := time.Now()
	note := &domain.Note{
		ID:          id,
		UserID:      userID,
		Title:       title,
		Body:        body,
		CreatedAt:   now,
		LastUpdated: now,
	}
	if err := u.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (u *NoteUsecase) Update(ctx context.Context, userID, noteID, title, body string) (*domain.Note, error) {
	note, err := u.notes.FindByID(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}

	note.Title = title
	note.Body = body
	note.LastUpdated = time.Now()

	if err := u.notes.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

func (u *NoteUsecase) Delete(ctx context.Context, userID, noteID string) error {
	if err := u.notes.Delete(ctx, userID, noteID); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return domain.ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
