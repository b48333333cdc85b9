package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps sessions in a process-local map. Sessions are lost on
// restart. Expired entries are dropped lazily when Resolve sees them; no
// background sweep runs.
type MemoryStore struct {
	sessions map[string]Session
	lock     sync.RWMutex
	nowTime  func() time.Time // injectable for testing
}

// MemoryStoreOption modifies a MemoryStore at construction time.
type MemoryStoreOption func(*MemoryStore)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.nowTime = nowFunc
	}
}

func NewMemoryStore(options ...MemoryStoreOption) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]Session),
		nowTime:  time.Now,
	}
	for _, opt := range options {
		opt(store)
	}
	return store
}

func (s *MemoryStore) Create(userID string, duration time.Duration) (string, error) {
	if userID == "" {
		return "", errs.Wrapf(errs.ErrValidation, "session user id is required")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	token := uuid.New().String()
	if _, exists := s.sessions[token]; exists {
		// Collision is practically unreachable with 128-bit tokens, but the
		// contract asks for a retry when one is detected.
		token = uuid.New().String()
	}

	s.sessions[token] = Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: s.nowTime(),
		Duration:  duration,
	}
	return token, nil
}

func (s *MemoryStore) Resolve(token string) (string, error) {
	if token == "" {
		return "", errs.ErrSessionNotFound
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return "", errs.ErrSessionNotFound
	}
	if session.Expired(s.nowTime()) {
		delete(s.sessions, token)
		return "", errs.ErrSessionExpired
	}
	return session.UserID, nil
}

func (s *MemoryStore) Destroy(token string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return false
	}
	delete(s.sessions, token)
	return true
}
