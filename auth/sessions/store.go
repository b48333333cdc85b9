package sessions

import "time"

// Session is a server-side record of a logged-in user. The token is the
// only part the client ever sees and is treated as a bearer credential.
type Session struct {
	Token     string        // Opaque random token (sent to client as a cookie value)
	UserID    string        // Server-side metadata
	CreatedAt time.Time     // Server-side metadata (issued at time)
	Duration  time.Duration // Lifetime; zero or negative means the session never expires
}

// Expired reports whether the session has outlived its duration at the
// given instant. Sessions without a positive duration never expire.
func (s Session) Expired(now time.Time) bool {
	if s.Duration <= 0 {
		return false
	}
	return now.After(s.CreatedAt.Add(s.Duration))
}

// Store defines the interface for session token storage.
//
// Tokens are opaque random strings generated by the store; once a token is
// destroyed it must never resolve to a user again.
type Store interface {
	// Create issues a new session token for the user. A non-positive
	// duration means the session never expires.
	Create(userID string, duration time.Duration) (string, error)

	// Resolve returns the user ID behind a live token. Unknown tokens
	// return errors.ErrSessionNotFound; tokens past their duration return
	// errors.ErrSessionExpired.
	Resolve(token string) (string, error)

	// Destroy removes a session, reporting whether one existed. Destroying
	// an already-gone token is safe and returns false.
	Destroy(token string) bool
}
