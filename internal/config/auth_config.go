package config

import (
	"strconv"
	"strings"
	"time"
)

// AuthType selects the credential verification strategy at startup.
type AuthType string

const (
	AuthTypeBasic      AuthType = "basic"       // Authorization header with Basic credentials
	AuthTypeSession    AuthType = "session"     // in-memory sessions, no expiry
	AuthTypeSessionExp AuthType = "session_exp" // in-memory sessions with expiry
	AuthTypeSessionDB  AuthType = "session_db"  // sqlite-persisted sessions
)

type AuthConfig interface {
	GetAuthType() AuthType
	GetSessionCookieName() string
	GetSessionDuration() time.Duration
	GetExcludedPaths() []string
	GetRedactedFields() []string
}

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetAuthType() AuthType {
	return AuthType(GetEnv("AUTH_TYPE", string(AuthTypeSession)))
}

func (Auth) GetSessionCookieName() string {
	return GetEnv("SESSION_NAME", "_my_session_id")
}

// GetSessionDuration returns the configured session lifetime.
// Zero means sessions never expire.
func (Auth) GetSessionDuration() time.Duration {
	seconds, err := strconv.Atoi(GetEnv("SESSION_DURATION", "0"))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func (Auth) GetExcludedPaths() []string {
	raw := GetEnv("AUTH_EXCLUDED_PATHS", "/api/v1/status/,/api/v1/users/,/api/v1/auth_session/login/,/api/v1/reset_password/")
	parts := strings.Split(raw, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// GetRedactedFields lists log fields whose values are replaced before
// anything is written to the log sink.
func (Auth) GetRedactedFields() []string {
	raw := GetEnv("PII_FIELDS", "email,password,session_id,reset_token")
	return strings.Split(raw, ",")
}
