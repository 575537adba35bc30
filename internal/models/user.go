package models

import "time"

// MaxUsernameLength is the longest username accepted at registration.
const MaxUsernameLength = 16

// User represents a registered account. Accounts are created at
// registration and never updated or deleted.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}
