package reset

import "time"

// StoredResetToken represents the server-side record of a password reset
// token. The user only ever receives the Token string; everything else is
// metadata used to consume it.
type StoredResetToken struct {
	Token  string    // The actual random token string (sent to the user)
	UserID string    // Server-side metadata
	Iat    time.Time // Server-side metadata (issued at time)
}

// Repo manages server-side storage of reset token metadata, keyed by the
// token string. At most one token is live per user.
type Repo interface {
	Upsert(token *StoredResetToken) error
	Delete(token string) error
	Get(token string) (*StoredResetToken, error)
	GetByUserID(userID string) (*StoredResetToken, error)
}
