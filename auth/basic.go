package auth

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/users"
)

const basicAuthPrefix = "Basic "

// ExtractBasicAuthHeader returns the base64 part of a Basic Authorization
// header value, or "" when the header is absent or carries another scheme.
func ExtractBasicAuthHeader(header string) string {
	if !strings.HasPrefix(header, basicAuthPrefix) {
		return ""
	}
	return header[len(basicAuthPrefix):]
}

// DecodeBasicAuthHeader base64-decodes extracted Basic credentials.
// Returns "" on empty input, invalid base64, or non-UTF-8 content.
func DecodeBasicAuthHeader(encoded string) string {
	if encoded == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || !utf8.Valid(decoded) {
		return ""
	}
	return string(decoded)
}

// SplitCredentials splits decoded Basic credentials into email and password.
// Only the first ':' separates them, so passwords may contain colons.
// Returns ("", "") when the input is empty or has no separator.
func SplitCredentials(decoded string) (string, string) {
	email, password, found := strings.Cut(decoded, ":")
	if !found {
		return "", ""
	}
	return email, password
}

// ResolveBasicUser looks a user up by exact email and verifies the password
// against the stored hash. Every failure path collapses to
// errors.ErrInvalidCredentials so callers cannot distinguish an unknown
// email from a wrong password.
func (s *Service) ResolveBasicUser(email, password string) (*users.User, error) {
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}
	user, err := s.repos.Users.FindOne(users.Filter{Email: email})
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	if !user.IsValidPassword(password) {
		return nil, errs.ErrInvalidCredentials
	}
	return user, nil
}
