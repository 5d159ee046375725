package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/inotes-app/inotes-backend/internal/domain"
	"github.com/inotes-app/inotes-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const maxNameLength = 255

type UserUsecase struct {
	users       repository.UserRepository
	sessions    repository.SessionRepository
	resetTokens repository.ResetTokenRepository
	notes       repository.NoteRepository
}

func NewUserUsecase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	resetTokens repository.ResetTokenRepository,
	notes repository.NoteRepository,
) *UserUsecase {
	return &UserUsecase{
		users:       users,
		sessions:    sessions,
		resetTokens: resetTokens,
		notes:       notes,
	}
}

func (u *UserUsecase) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateInfo changes email and names. The email-in-use check excludes
// the user's own record, so re-submitting the current email is allowed.
func (u *UserUsecase) UpdateInfo(ctx context.Context, userID, emailAddr, firstName, lastName string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := validate.Var(emailAddr, "required,email"); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(firstName) > maxNameLength || len(lastName) > maxNameLength {
		return nil, domain.ErrNameTooLong
	}

	existing, err := u.users.FindByEmail(ctx, emailAddr)
	if err == nil && existing.ID != userID {
		return nil, domain.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	if err := u.users.UpdateInfo(ctx, userID, emailAddr, firstName, lastName); err != nil {
		return nil, fmt.Errorf("update user info: %w", err)
	}

	user.Email = emailAddr
	user.FirstName = firstName
	user.LastName = lastName
	return user, nil
}

// ChangePassword verifies the old password before re-hashing the new
// one. Existing sessions stay valid after the change.
func (u *UserUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if len(newPassword) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrPasswordMismatch
		}
		return fmt.Errorf("compare password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := u.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Delete cascades across the user's sessions, reset tokens and notes
// before removing the user record. The deletes are independent and not
// transactional; the first failure stops the cascade where it is.
func (u *UserUsecase) Delete(ctx context.Context, userID string) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := u.sessions.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("cascade sessions: %w", err)
	}
	if err := u.resetTokens.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("cascade reset tokens: %w", err)
	}
	if err := u.notes.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("cascade notes: %w", err)
	}
	if err := u.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
