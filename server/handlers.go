package server

import (
	"encoding/json"
	"net/http"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
)

const contentTypeJSON = "application/json; charset=utf-8"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// StatusHandler reports service liveness.
func (s *Server) StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}
}

// RegisterHandler creates a new user from form credentials.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.FormValue("email")
		password := r.FormValue("password")

		if email == "" {
			writeError(w, http.StatusBadRequest, "email missing")
			return
		}
		if password == "" {
			writeError(w, http.StatusBadRequest, "password missing")
			return
		}

		user, err := s.auth.Register(email, password)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, map[string]string{"email": user.Email, "message": "user created"})
		case errs.Is(err, errs.ErrDuplicateUser):
			writeError(w, http.StatusBadRequest, "email already registered")
		case errs.Is(err, errs.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
	}
}

// LoginHandler verifies form credentials and opens a session, returning the
// session token as a cookie.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.FormValue("email")
		password := r.FormValue("password")

		if email == "" {
			writeError(w, http.StatusBadRequest, "email missing")
			return
		}
		if password == "" {
			writeError(w, http.StatusBadRequest, "password missing")
			return
		}

		if !s.auth.UserExists(email) {
			writeError(w, http.StatusNotFound, "no user found for this email")
			return
		}
		if !s.auth.ValidLogin(email, password) {
			writeError(w, http.StatusUnauthorized, "wrong password")
			return
		}

		token, err := s.auth.CreateSession(email)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not create session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     s.sessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})
		writeJSON(w, http.StatusOK, map[string]string{"email": email, "message": "logged in"})
	}
}

// LogoutHandler destroys the session behind the request's cookie.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(s.sessionCookie); err == nil {
			token = cookie.Value
		}

		if !s.auth.DestroySession(token) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:   s.sessionCookie,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		writeJSON(w, http.StatusOK, map[string]string{})
	}
}

// MeHandler returns the authenticated user.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r)
		if user == nil {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// IssueResetTokenHandler starts the password reset flow for an email.
func (s *Server) IssueResetTokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.FormValue("email")
		if email == "" {
			writeError(w, http.StatusBadRequest, "email missing")
			return
		}

		token, err := s.auth.IssueResetToken(email)
		if err != nil {
			writeError(w, http.StatusForbidden, "unknown email")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"email": email, "reset_token": token})
	}
}

// UpdatePasswordHandler consumes a reset token and stores a new password.
func (s *Server) UpdatePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.FormValue("email")
		resetToken := r.FormValue("reset_token")
		newPassword := r.FormValue("new_password")

		if resetToken == "" {
			writeError(w, http.StatusBadRequest, "reset_token missing")
			return
		}
		if newPassword == "" {
			writeError(w, http.StatusBadRequest, "new_password missing")
			return
		}

		err := s.auth.UpdatePassword(resetToken, newPassword)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, map[string]string{"email": email, "message": "Password updated"})
		case errs.Is(err, errs.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusForbidden, "invalid reset token")
		}
	}
}
