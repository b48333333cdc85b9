package sqlite

import (
	"database/sql"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/token/reset"
)

func (s *Store) Upsert(token *reset.StoredResetToken) error {
	// INSERT OR REPLACE keyed on the user_id unique constraint keeps at most
	// one live token per user.
	_, err := s.sqlDB.Exec(
		`INSERT OR REPLACE INTO reset_tokens (token, user_id, issued_at) VALUES (?, ?, ?)`,
		token.Token, token.UserID, toMillis(token.Iat),
	)
	if err != nil {
		return errs.Wrapf(err, "upsert reset token")
	}
	return nil
}

func (s *Store) Delete(token string) error {
	result, err := s.sqlDB.Exec(`DELETE FROM reset_tokens WHERE token = ?`, token)
	if err != nil {
		return errs.Wrapf(err, "delete reset token")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errs.Wrapf(err, "delete reset token")
	}
	if affected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *Store) Get(token string) (*reset.StoredResetToken, error) {
	return s.scanResetToken(
		s.sqlDB.QueryRow(`SELECT token, user_id, issued_at FROM reset_tokens WHERE token = ?`, token),
	)
}

func (s *Store) GetByUserID(userID string) (*reset.StoredResetToken, error) {
	return s.scanResetToken(
		s.sqlDB.QueryRow(`SELECT token, user_id, issued_at FROM reset_tokens WHERE user_id = ?`, userID),
	)
}

func (s *Store) scanResetToken(row *sql.Row) (*reset.StoredResetToken, error) {
	var (
		stored   reset.StoredResetToken
		issuedAt int64
	)
	err := row.Scan(&stored.Token, &stored.UserID, &issuedAt)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, errs.Wrapf(err, "scan reset token")
	}
	stored.Iat = fromMillis(issuedAt)
	return &stored, nil
}
