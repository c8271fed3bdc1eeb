package domain

import "time"

// Session is the server side record behind a bearer token. Revocation deletes
// the row.
type Session struct {
	ID        string
	UserID    string
	TokenHash string // base64url SHA-256 of the opaque token
	ExpiresAt time.Time
	CreatedAt time.Time
}

// ValidAt reports whether the session is still live at now.
func (s Session) ValidAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
