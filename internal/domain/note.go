package domain

import "time"

type Note struct {
	ID          string
	UserID      string
	Title       string
	Body        string
	CreatedAt   time.Time
	LastUpdated time.Time
}
