// Package sqlite provides the persisted backing for users, sessions and
// reset tokens. One database file implements all three storage contracts so
// the auth subflows share the same visibility boundaries and survive
// restarts.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eddybrownent/alx-backend-user-data/auth/sessions"
	"github.com/eddybrownent/alx-backend-user-data/token/reset"
	"github.com/eddybrownent/alx-backend-user-data/users"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              TEXT PRIMARY KEY,
	email           TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL,
	session_token   TEXT NOT NULL DEFAULT '',
	reset_token     TEXT NOT NULL DEFAULT '',
	created_at      INTEGER NOT NULL,
	last_login_at   INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_users_session_token ON users(session_token);
CREATE INDEX IF NOT EXISTS idx_users_reset_token ON users(reset_token);

CREATE TABLE IF NOT EXISTS sessions (
	token            TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	created_at       INTEGER NOT NULL,
	duration_seconds INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS reset_tokens (
	token     TEXT PRIMARY KEY,
	user_id   TEXT NOT NULL UNIQUE,
	issued_at INTEGER NOT NULL
);
`

var (
	_ users.Repo     = (*Store)(nil)
	_ sessions.Store = (*Store)(nil)
	_ reset.Repo     = (*Store)(nil)
)

// Store implements user, session and reset token persistence over SQLite.
type Store struct {
	sqlDB   *sql.DB
	nowTime func() time.Time
}

// StoreOption modifies a Store at construction time.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// Open opens the SQLite store at path and applies the schema.
func Open(path string, options ...StoreOption) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	store := &Store{sqlDB: sqlDB, nowTime: time.Now}
	for _, opt := range options {
		opt(store)
	}
	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// isUniqueConflict reports whether err is a UNIQUE constraint violation.
func isUniqueConflict(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE")
}

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
