package reset

import (
	"sync"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
)

var _ Repo = (*MemoryRepo)(nil)

// MemoryRepo is an in-memory Repo. Process-local, lost on restart.
type MemoryRepo struct {
	tokens  map[string]*StoredResetToken
	userIDs map[string]string // user ID to token
	lock    sync.RWMutex
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		tokens:  make(map[string]*StoredResetToken),
		userIDs: make(map[string]string),
	}
}

func (r *MemoryRepo) Upsert(token *StoredResetToken) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.tokens[token.Token] = token
	r.userIDs[token.UserID] = token.Token
	return nil
}

func (r *MemoryRepo) Delete(token string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	stored, ok := r.tokens[token]
	if !ok {
		return errs.ErrNotFound
	}
	delete(r.userIDs, stored.UserID)
	delete(r.tokens, token)
	return nil
}

func (r *MemoryRepo) Get(token string) (*StoredResetToken, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	stored, ok := r.tokens[token]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return stored, nil
}

func (r *MemoryRepo) GetByUserID(userID string) (*StoredResetToken, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	token, ok := r.userIDs[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return r.tokens[token], nil
}
