package reset

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Manager handles password reset token issuance and single-use consumption.
type Manager struct {
	repo Repo
}

// NewManager creates a new reset token manager
func NewManager(repo Repo) *Manager {
	return &Manager{repo: repo}
}

// Issue generates a reset token for the user, replacing any prior token.
// Repeated requests therefore leave exactly one live token.
func (m *Manager) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errs.Wrapf(errs.ErrValidation, "reset token user id is required")
	}

	if existing, err := m.repo.GetByUserID(userID); err == nil && existing != nil {
		if err := m.repo.Delete(existing.Token); err != nil {
			return "", errs.Wrapf(err, "failed to delete existing reset token")
		}
	}

	tokenStr := uuid.New().String()
	if err := m.repo.Upsert(&StoredResetToken{
		Token:  tokenStr,
		UserID: userID,
		Iat:    NowTimeFunc(),
	}); err != nil {
		return "", errs.Wrapf(err, "failed to store reset token")
	}
	return tokenStr, nil
}

// Consume resolves a token to its user and deletes it in the same call.
// A token is valid for at most one successful Consume.
func (m *Manager) Consume(token string) (string, error) {
	if token == "" {
		return "", errs.ErrInvalidResetToken
	}

	stored, err := m.repo.Get(token)
	if err != nil || stored == nil {
		return "", errs.ErrInvalidResetToken
	}
	if err := m.repo.Delete(token); err != nil {
		return "", errs.Wrapf(err, "failed to consume reset token")
	}
	return stored.UserID, nil
}

// Revoke drops any live token for the user without consuming it.
func (m *Manager) Revoke(userID string) error {
	existing, err := m.repo.GetByUserID(userID)
	if err != nil || existing == nil {
		return nil
	}
	return m.repo.Delete(existing.Token)
}
