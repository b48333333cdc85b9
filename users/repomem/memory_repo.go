package repomem

import (
	"sync"
	"time"

	"github.com/google/uuid"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/users"
)

var _ users.Repo = (*Repo)(nil)

// Repo is an in-memory users.Repo. Process-local, lost on restart.
type Repo struct {
	users    map[string]*users.User
	emailIDs map[string]string // email to user id
	lock     sync.RWMutex
}

func New() *Repo {
	return &Repo{
		users:    make(map[string]*users.User),
		emailIDs: make(map[string]string),
	}
}

func (r *Repo) Insert(user *users.User) (*users.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.emailIDs[user.Email]; ok {
		return nil, errs.ErrDuplicateUser
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users[stored.ID] = &stored
	r.emailIDs[stored.Email] = stored.ID

	result := stored
	return &result, nil
}

func (r *Repo) FindOne(filter users.Filter) (*users.User, error) {
	if filter.IsZero() {
		return nil, errs.Wrapf(errs.ErrValidation, "empty user filter")
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	// ID and email are indexed; token filters scan stored records.
	if filter.ID != "" {
		if u, ok := r.users[filter.ID]; ok && matches(u, filter) {
			return copyOf(u), nil
		}
		return nil, errs.ErrNotFound
	}
	if filter.Email != "" {
		if id, ok := r.emailIDs[filter.Email]; ok && matches(r.users[id], filter) {
			return copyOf(r.users[id]), nil
		}
		return nil, errs.ErrNotFound
	}
	for _, u := range r.users {
		if matches(u, filter) {
			return copyOf(u), nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *Repo) Update(id string, fields users.Fields) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errs.ErrNotFound
	}

	for key, value := range fields {
		switch key {
		case users.FieldEmail:
			delete(r.emailIDs, user.Email)
			user.Email = value
			r.emailIDs[value] = id
		case users.FieldHashedPassword:
			user.HashedPassword = value
		case users.FieldSessionToken:
			user.SessionToken = value
		case users.FieldResetToken:
			user.ResetToken = value
		default:
			return errs.Wrapf(errs.ErrUnknownField, "update field %q", key)
		}
	}
	return nil
}

func matches(u *users.User, f users.Filter) bool {
	if f.ID != "" && u.ID != f.ID {
		return false
	}
	if f.Email != "" && u.Email != f.Email {
		return false
	}
	if f.SessionToken != "" && u.SessionToken != f.SessionToken {
		return false
	}
	if f.ResetToken != "" && u.ResetToken != f.ResetToken {
		return false
	}
	return true
}

func copyOf(u *users.User) *users.User {
	c := *u
	return &c
}
