package domain

import "time"

const (
	// SessionTTL is both the initial session lifetime and the sliding
	// extension applied on every authenticated request.
	SessionTTL = 7 * 24 * time.Hour

	// ResetTokenTTL is the lifetime of a password-reset code.
	ResetTokenTTL = 5 * time.Minute
)

// Session is the bearer credential a client holds after login. Hash is
// the opaque "session-..." token itself, not a digest of it.
type Session struct {
	Hash   string
	UserID string
	Expiry time.Time
}

// ResetPasswordToken is a short-lived, single-use 6-digit code emailed
// to the user.
type ResetPasswordToken struct {
	Token  string
	UserID string
	Expiry time.Time
}
