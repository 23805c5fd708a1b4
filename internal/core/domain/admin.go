package domain

import "time"

// Administrator is a back-office identity. Administrators log in with their
// username and are always implicitly active; there is no status field.
type Administrator struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
