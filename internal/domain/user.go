package domain

import "time"

type User struct {
	ID           string
	Email        string
	Password     string // bcrypt digest, never plaintext
	FirstName    string
	LastName     string
	RegisteredAt time.Time
}
