package sqlite

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
)

func (s *Store) Create(userID string, duration time.Duration) (string, error) {
	if userID == "" {
		return "", errs.Wrapf(errs.ErrValidation, "session user id is required")
	}

	createdAt := toMillis(s.nowTime())
	seconds := int64(duration / time.Second)

	token := uuid.New().String()
	for attempt := 0; ; attempt++ {
		_, err := s.sqlDB.Exec(
			`INSERT INTO sessions (token, user_id, created_at, duration_seconds) VALUES (?, ?, ?, ?)`,
			token, userID, createdAt, seconds,
		)
		if err == nil {
			return token, nil
		}
		if !isUniqueConflict(err) || attempt == 1 {
			return "", errs.Wrapf(err, "insert session")
		}
		// Token collision on the primary key is practically unreachable;
		// retry once with a new token before giving up.
		token = uuid.New().String()
	}
}

func (s *Store) Resolve(token string) (string, error) {
	if token == "" {
		return "", errs.ErrSessionNotFound
	}

	var (
		userID    string
		createdAt int64
		seconds   int64
	)
	err := s.sqlDB.QueryRow(
		`SELECT user_id, created_at, duration_seconds FROM sessions WHERE token = ?`,
		token,
	).Scan(&userID, &createdAt, &seconds)
	if err == sql.ErrNoRows {
		return "", errs.ErrSessionNotFound
	}
	if err != nil {
		return "", errs.Wrapf(err, "resolve session")
	}

	if seconds > 0 {
		expiry := fromMillis(createdAt).Add(time.Duration(seconds) * time.Second)
		if s.nowTime().After(expiry) {
			_, _ = s.sqlDB.Exec(`DELETE FROM sessions WHERE token = ?`, token)
			return "", errs.ErrSessionExpired
		}
	}
	return userID, nil
}

func (s *Store) Destroy(token string) bool {
	result, err := s.sqlDB.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return false
	}
	affected, err := result.RowsAffected()
	return err == nil && affected > 0
}
