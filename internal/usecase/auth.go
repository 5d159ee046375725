package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/inotes-app/inotes-backend/internal/domain"
	"github.com/inotes-app/inotes-backend/internal/email"
	"github.com/inotes-app/inotes-backend/internal/metrics"
	"github.com/inotes-app/inotes-backend/internal/repository"
	"github.com/inotes-app/inotes-backend/internal/token"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionPrefix   = "session-"
	idLength        = 32
	resetCodeLength = 6

	minPasswordLength = 8
	maxEmailLength    = 255

	bcryptCost = bcrypt.DefaultCost
)

const (
	resetEmailSubject = "iNotes Password Reset Request"
	resetEmailBody    = "Your request to reset your password has been received. " +
		"If you did not request a password reset, please ignore this email. " +
		"If you did request a password reset, please use the following token to reset your password:\n\n%s\n\n" +
		"This token will expire in 5 minutes."
)

var validate = validator.New()

type AuthUsecase struct {
	users       repository.UserRepository
	sessions    repository.SessionRepository
	resetTokens repository.ResetTokenRepository
	email       email.Sender
}

func NewAuthUsecase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	resetTokens repository.ResetTokenRepository,
	emailSender email.Sender,
) *AuthUsecase {
	return &AuthUsecase{
		users:       users,
		sessions:    sessions,
		resetTokens: resetTokens,
		email:       emailSender,
	}
}

// Register validates the credentials, hashes the password and persists a
// new user with a fresh 32-character id. The duplicate-email check is a
// case-sensitive exact match; two concurrent registrations can both pass
// it (check-then-insert, no store-level unique constraint).
func (u *AuthUsecase) Register(ctx context.Context, emailAddr, password string) error {
	if err := validate.Var(emailAddr, "required,email"); err != nil {
		return domain.ErrInvalidEmail
	}
	if len(emailAddr) > maxEmailLength {
		return domain.ErrEmailTooLong
	}
	if len(password) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}

	if _, err := u.users.FindByEmail(ctx, emailAddr); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	id, err := token.UniqueID(ctx, "", idLength, u.users.ExistsID)
	if err != nil {
		return fmt.Errorf("generate user id: %w", err)
	}

	user := &domain.User{
		ID:           id,
		Email:        emailAddr,
		Password:     string(hash),
		RegisteredAt: time.Now(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	return nil
}

// Login verifies the credentials and creates a session. Unknown email
// and wrong password both come back as ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("compare password: %w", err)
	}

	hash, err := u.createSession(ctx, user.ID)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return hash, nil
}

func (u *AuthUsecase) createSession(ctx context.Context, userID string) (string, error) {
	hash, err := token.UniqueID(ctx, sessionPrefix, idLength, u.sessions.ExistsHash)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	session := &domain.Session{
		Hash:   hash,
		UserID: userID,
		Expiry: time.Now().Add(domain.SessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return hash, nil
}

// Logout revokes the session matching the bearer token.
func (u *AuthUsecase) Logout(ctx context.Context, sessionHash string) error {
	return u.sessions.DeleteByHash(ctx, sessionHash)
}

// RequestPasswordReset stores a unique 6-digit code and emails it. When
// no user matches the email it silently succeeds, so the response never
// reveals whether an account exists.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	code, err := token.UniqueDigits(ctx, resetCodeLength, u.resetTokens.ExistsToken)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	resetToken := &domain.ResetPasswordToken{
		Token:  code,
		UserID: user.ID,
		Expiry: time.Now().Add(domain.ResetTokenTTL),
	}
	if err := u.resetTokens.Create(ctx, resetToken); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := u.email.Send(ctx, user.Email, resetEmailSubject, fmt.Sprintf(resetEmailBody, code)); err != nil {
		metrics.EmailsSentTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("send reset email: %w", err)
	}

	metrics.EmailsSentTotal.WithLabelValues("success").Inc()
	return nil
}

// ConfirmPasswordReset consumes a reset token: the password is re-hashed
// and the token deleted so a second confirm with it fails.
func (u *AuthUsecase) ConfirmPasswordReset(ctx context.Context, tokenValue, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}

	resetToken, err := u.resetTokens.FindByToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			return domain.ErrResetTokenInvalid
		}
		return fmt.Errorf("find reset token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := u.users.UpdatePassword(ctx, resetToken.UserID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := u.resetTokens.DeleteByToken(ctx, resetToken.Token); err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	return nil
}
