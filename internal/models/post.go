package models

import "time"

// Post is a published blog entry. Author holds the creator's username;
// ownership checks compare it against the session identity.
type Post struct {
	ID         int64      `json:"id"`
	Author     string     `json:"author"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	DatePosted time.Time  `json:"date_posted"`
	DateEdited *time.Time `json:"date_edited,omitempty"`
}

// Edited reports whether the post has been changed since creation.
func (p *Post) Edited() bool {
	return p.DateEdited != nil
}
