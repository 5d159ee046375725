package domain

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both unknown email and
	// wrong password so login responses cannot be used for enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmailTooLong     = errors.New("email too long")
	ErrPasswordTooShort = errors.New("password too short")
	ErrNameTooLong      = errors.New("name too long")
	ErrPasswordMismatch = errors.New("incorrect old password")

	ErrSessionInvalid    = errors.New("invalid session")
	ErrResetTokenInvalid = errors.New("invalid reset token")

	ErrUserNotFound = errors.New("user not found")
	ErrNoteNotFound = errors.New("note not found")
)
