package auth

import (
	"net/http"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/users"
)

// CredentialVerifier is the strategy that turns an HTTP request into an
// authenticated user. Basic and session verification are selected at
// startup; the surrounding middleware is identical for both.
type CredentialVerifier interface {
	// Credential returns the raw credential carried by the request, or ""
	// when none is presented.
	Credential(r *http.Request) string

	// CurrentUser resolves the request's credential to a user.
	CurrentUser(r *http.Request) (*users.User, error)
}

// BasicVerifier authenticates requests from an Authorization: Basic header.
type BasicVerifier struct {
	service *Service
}

var _ CredentialVerifier = (*BasicVerifier)(nil)

func NewBasicVerifier(service *Service) *BasicVerifier {
	return &BasicVerifier{service: service}
}

func (v *BasicVerifier) Credential(r *http.Request) string {
	return ExtractBasicAuthHeader(r.Header.Get("Authorization"))
}

func (v *BasicVerifier) CurrentUser(r *http.Request) (*users.User, error) {
	decoded := DecodeBasicAuthHeader(v.Credential(r))
	email, password := SplitCredentials(decoded)
	return v.service.ResolveBasicUser(email, password)
}

// SessionVerifier authenticates requests from a session cookie. The cookie
// name is deployment-configured.
type SessionVerifier struct {
	service    *Service
	cookieName string
}

var _ CredentialVerifier = (*SessionVerifier)(nil)

func NewSessionVerifier(service *Service, cookieName string) *SessionVerifier {
	return &SessionVerifier{service: service, cookieName: cookieName}
}

// CookieName returns the configured session cookie name.
func (v *SessionVerifier) CookieName() string {
	return v.cookieName
}

func (v *SessionVerifier) Credential(r *http.Request) string {
	cookie, err := r.Cookie(v.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (v *SessionVerifier) CurrentUser(r *http.Request) (*users.User, error) {
	token := v.Credential(r)
	if token == "" {
		return nil, errs.ErrSessionNotFound
	}
	return v.service.ResolveSession(token)
}
