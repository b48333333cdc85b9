package users

import (
	"time"
)

// User is the persisted account record. Credential material (the password
// hash and any outstanding tokens) is never serialized.
type User struct {
	ID             string    `json:"id,omitempty"`            // Unique identifier for the user
	Email          string    `json:"email,omitempty"`         // User's email address, unique across the store
	HashedPassword string    `json:"-"`                       // Salted bcrypt hash - never serialize
	SessionToken   string    `json:"-"`                       // Active session token, empty when logged out
	ResetToken     string    `json:"-"`                       // Outstanding password reset token, single use
	CreatedAt      time.Time `json:"created_at,omitempty"`    // When the user registered
	LastLoginAt    time.Time `json:"last_login_at,omitempty"` // Last successful login
}

// IsValidPassword checks a plaintext password against the stored hash.
func (u *User) IsValidPassword(password string) bool {
	return CheckPasswordHash(password, u.HashedPassword)
}
