package sqlite

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/users"
)

const userColumns = "id, email, hashed_password, session_token, reset_token, created_at, last_login_at"

func (s *Store) Insert(user *users.User) (*users.User, error) {
	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.nowTime()
	}

	_, err := s.sqlDB.Exec(
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, stored.Email, stored.HashedPassword, stored.SessionToken,
		stored.ResetToken, toMillis(stored.CreatedAt), toMillis(stored.LastLoginAt),
	)
	if err != nil {
		if isUniqueConflict(err) {
			return nil, errs.ErrDuplicateUser
		}
		return nil, errs.Wrapf(err, "insert user")
	}
	return &stored, nil
}

func (s *Store) FindOne(filter users.Filter) (*users.User, error) {
	if filter.IsZero() {
		return nil, errs.Wrapf(errs.ErrValidation, "empty user filter")
	}

	var (
		where []string
		args  []any
	)
	if filter.ID != "" {
		where = append(where, "id = ?")
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		where = append(where, "email = ?")
		args = append(args, filter.Email)
	}
	if filter.SessionToken != "" {
		where = append(where, "session_token = ?")
		args = append(args, filter.SessionToken)
	}
	if filter.ResetToken != "" {
		where = append(where, "reset_token = ?")
		args = append(args, filter.ResetToken)
	}

	row := s.sqlDB.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE `+strings.Join(where, " AND ")+` LIMIT 1`,
		args...,
	)
	return scanUser(row)
}

func (s *Store) Update(id string, fields users.Fields) error {
	var (
		set  []string
		args []any
	)
	for key, value := range fields {
		switch key {
		case users.FieldEmail, users.FieldHashedPassword, users.FieldSessionToken, users.FieldResetToken:
			set = append(set, key+" = ?")
			args = append(args, value)
		default:
			return errs.Wrapf(errs.ErrUnknownField, "update field %q", key)
		}
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	result, err := s.sqlDB.Exec(`UPDATE users SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return errs.Wrapf(err, "update user %s", id)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errs.Wrapf(err, "update user %s", id)
	}
	if affected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*users.User, error) {
	var (
		u         users.User
		createdAt int64
		lastLogin int64
	)
	err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.SessionToken, &u.ResetToken, &createdAt, &lastLogin)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, errs.Wrapf(err, "scan user")
	}
	u.CreatedAt = fromMillis(createdAt)
	u.LastLoginAt = fromMillis(lastLogin)
	return &u, nil
}
