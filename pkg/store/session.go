package store

import "time"

// Session is the server-side record behind an issued access token. It lives
// only in memory; expiry is handled by the cache TTL.
type Session struct {
	ID        string    `json:"id"` // token id, cache key
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
