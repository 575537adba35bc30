package models

import "time"

// Session binds a browser cookie to an authenticated user. The plain token
// only ever lives in the cookie; the store keeps a hash of it.
type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	TokenHash string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
