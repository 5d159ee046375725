package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/inotes-app/inotes-backend/internal/domain"
	"github.com/inotes-app/inotes-backend/internal/usecase"
)

func TestCreateNote_GeneratesPrefixedIDAndTimestamps(t *testing.T) {
	var stored *domain.Note
	notes := &fakeNoteRepo{
		create: func(_ context.Context, note *domain.Note) error {
			stored = note
			return nil
		},
	}

	before := time.Now()
	note, err := usecase.NewNoteUsecase(notes).Create(context.Background(), "u1", "Groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatal("note not persisted")
	}

	if !strings.HasPrefix(note.ID, "note-") {
		t.Errorf("id = %q, want note- prefix", note.ID)
	}
	if got := len(strings.TrimPrefix(note.ID, "note-")); got != 32 {
		t.Errorf("id suffix length = %d, want 32", got)
	}
	if note.UserID != "u1" {
		t.Errorf("userID = %q, want u1", note.UserID)
	}
	if note.Title != "Groceries" || note.Body != "milk, eggs" {
		t.Errorf("content not stored: %q %q", note.Title, note.Body)
	}
	if note.CreatedAt.Before(before) {
		t.Errorf("createdAt = %v, before test start", note.CreatedAt)
	}
	if !note.LastUpdated.Equal(note.CreatedAt) {
		t.Errorf("lastUpdated = %v, want equal to createdAt %v", note.LastUpdated, note.CreatedAt)
	}
}

func TestCreateNote_RetriesIDOnCollision(t *testing.T) {
	calls := 0
	notes := &fakeNoteRepo{
		existsID: func(_ context.Context, _ string) (bool, error) {
			calls++
			return calls < 3, nil
		},
	}

	_, err := usecase.NewNoteUsecase(notes).Create(context.Background(), "u1", "t", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("uniqueness checks = %d, want 3", calls)
	}
}

func TestGetNote_OtherUsersNoteLooksMissing(t *testing.T) {
	notes := &fakeNoteRepo{
		findByID: func(_ context.Context, userID, id string) (*domain.Note, error) {
			if userID == "owner" && id == "note-1" {
				return &domain.Note{ID: id, UserID: userID}, nil
			}
			return nil, domain.ErrNoteNotFound
		},
	}
	u := usecase.NewNoteUsecase(notes)

	if _, err := u.Get(context.Background(), "owner", "note-1"); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	_, err := u.Get(context.Background(), "intruder", "note-1")
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("error = %v, want ErrNoteNotFound", err)
	}
}

func TestUpdateNote_RestampsLastUpdatedOnly(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	var updated *domain.Note
	notes := &fakeNoteRepo{
		findByID: func(_ context.Context, _, _ string) (*domain.Note, error) {
			return &domain.Note{
				ID:          "note-1",
				UserID:      "u1",
				Title:       "old",
				Body:        "old body",
				CreatedAt:   created,
				LastUpdated: created,
			}, nil
		},
		update: func(_ context.Context, note *domain.Note) error {
			updated = note
			return nil
		},
	}

	note, err := usecase.NewNoteUsecase(notes).Update(context.Background(), "u1", "note-1", "new", "new body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("update not persisted")
	}
	if note.Title != "new" || note.Body != "new body" {
		t.Errorf("content not applied: %q %q", note.Title, note.Body)
	}
	if !note.CreatedAt.Equal(created) {
		t.Errorf("createdAt changed: %v", note.CreatedAt)
	}
	if !note.LastUpdated.After(created) {
		t.Errorf("lastUpdated not restamped: %v", note.LastUpdated)
	}
}

func TestUpdateNote_NotFound(t *testing.T) {
	_, err := usecase.NewNoteUsecase(&fakeNoteRepo{}).Update(context.Background(), "u1", "note-x", "t", "b")
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("error = %v, want ErrNoteNotFound", err)
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	notes := &fakeNoteRepo{
		delete: func(_ context.Context, _, _ string) error {
			return domain.ErrNoteNotFound
		},
	}
	err := usecase.NewNoteUsecase(notes).Delete(context.Background(), "u1", "note-x")
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("error = %v, want ErrNoteNotFound", err)
	}
}

func TestListNotes_EmptyStore(t *testing.T) {
	notes, err := usecase.NewNoteUsecase(&fakeNoteRepo{}).List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("notes = %v, want empty", notes)
	}
}
