package server

import (
	"context"
	"net/http"

	"github.com/eddybrownent/alx-backend-user-data/auth"
	"github.com/eddybrownent/alx-backend-user-data/users"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyUser stores the authenticated user
const ContextKeyUser ContextKey = "user"

// RequireAuth gates a route behind the configured credential verifier. The
// path-exclusion policy is consulted first, so excluded routes pass through
// untouched. A request with no credential gets 401; a credential that does
// not resolve to a user gets 403.
func (s *Server) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !auth.RequiresAuth(r.URL.Path, s.excludedPaths) {
			next(w, r)
			return
		}

		if s.verifier.Credential(r) == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := s.verifier.CurrentUser(r)
		if err != nil || user == nil {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUser, user)
		next(w, r.WithContext(ctx))
	}
}

// currentUser returns the authenticated user injected by RequireAuth.
func currentUser(r *http.Request) *users.User {
	user, _ := r.Context().Value(ContextKeyUser).(*users.User)
	return user
}
