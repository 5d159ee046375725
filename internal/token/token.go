// Package token generates collision-checked identifiers: opaque
// high-entropy ids for users, sessions and notes, and short 6-digit
// codes for password resets.
package token

import (
	"context"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const digits = "0123456789"

// ExistsFunc reports whether a candidate identifier is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// UniqueID draws random candidates of the given length, applies the
// prefix, and retries until exists reports no match. There is no retry
// cap: at 32 characters the collision probability is negligible, so a
// livelock here means the store is returning garbage anyway.
func UniqueID(ctx context.Context, prefix string, length int, exists ExistsFunc) (string, error) {
	for {
		id, err := gonanoid.New(length)
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		candidate := prefix + id

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check id uniqueness: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
}

// UniqueDigits draws numeric codes of the given length until exists
// reports no match. Collisions are far more likely than for UniqueID
// (a 6-digit code has a million values), hence the same retry loop.
func UniqueDigits(ctx context.Context, length int, exists ExistsFunc) (string, error) {
	for {
		code, err := gonanoid.Generate(digits, length)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code uniqueness: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
}
