package auth

import (
	"time"

	"github.com/pkg/errors"

	"github.com/eddybrownent/alx-backend-user-data/auth/sessions"
	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/token/reset"
	"github.com/eddybrownent/alx-backend-user-data/users"
)

// Repos holds the repository dependencies for the Service
type Repos struct {
	Users    users.Repo     // Repository for user records
	Sessions sessions.Store // Store for session tokens
}

// Service orchestrates registration, login, session lifecycle and the
// password reset flow. A user moves Anonymous -> Authenticated (password)
// -> Session-Active -> Anonymous again on logout or expiry.
type Service struct {
	repos           Repos
	resetTokens     *reset.Manager   // Issue and consume password reset tokens
	sessionDuration time.Duration    // Lifetime handed to the session store; zero means no expiry
	userLocks       *keyedMutex      // Per-user mutual exclusion for read-modify-write operations
	nowTime         func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithServiceNowTime sets the now time function (primarily for testing)
func WithServiceNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// WithSessionDuration sets the lifetime applied to new sessions.
func WithSessionDuration(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.sessionDuration = d
	}
}

// NewService initializes a new Service with required dependencies.
func NewService(repos Repos, resetTokens *reset.Manager, options ...ServiceOption) (*Service, error) {
	if repos.Users == nil {
		return nil, errors.New("[NewService] Users repo is required")
	}
	if repos.Sessions == nil {
		return nil, errors.New("[NewService] Sessions store is required")
	}
	if resetTokens == nil {
		return nil, errors.New("[NewService] reset token manager is required")
	}

	service := &Service{
		repos:       repos,
		resetTokens: resetTokens,
		userLocks:   newKeyedMutex(),
		nowTime:     time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// Register creates a new user with a freshly salted password hash.
// Fails with errors.ErrDuplicateUser when the email is already registered.
func (s *Service) Register(email, password string) (*users.User, error) {
	if email == "" {
		return nil, errs.Wrapf(errs.ErrValidation, "email is required")
	}
	if password == "" {
		return nil, errs.Wrapf(errs.ErrValidation, "password is required")
	}
	if err := users.ValidatePasswordStrength(password); err != nil {
		return nil, errs.Wrapf(errs.ErrValidation, "%s", err.Error())
	}

	if _, err := s.repos.Users.FindOne(users.Filter{Email: email}); err == nil {
		return nil, errs.Wrapf(errs.ErrDuplicateUser, "user %s", email)
	}

	hashed, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "[Register] HashPassword")
	}

	user, err := s.repos.Users.Insert(&users.User{
		Email:          email,
		HashedPassword: hashed,
		CreatedAt:      s.nowTime(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Register] Insert")
	}
	return user, nil
}

// UserExists reports whether a user is registered under email.
func (s *Service) UserExists(email string) bool {
	_, err := s.repos.Users.FindOne(users.Filter{Email: email})
	return err == nil
}

// ValidLogin reports whether the email and password form a valid login.
// Missing user, malformed hash and mismatch all collapse to false.
func (s *Service) ValidLogin(email, password string) bool {
	user, err := s.repos.Users.FindOne(users.Filter{Email: email})
	if err != nil {
		return false
	}
	return user.IsValidPassword(password)
}

// CreateSession issues a session token for the user behind email and
// persists the association on the user record.
func (s *Service) CreateSession(email string) (string, error) {
	user, err := s.repos.Users.FindOne(users.Filter{Email: email})
	if err != nil {
		return "", errs.Wrapf(errs.ErrUserNotFound, "user %s", email)
	}

	unlock := s.userLocks.Lock(user.ID)
	defer unlock()

	token, err := s.repos.Sessions.Create(user.ID, s.sessionDuration)
	if err != nil {
		return "", errors.Wrap(err, "[CreateSession] Sessions.Create")
	}

	if err := s.repos.Users.Update(user.ID, users.Fields{users.FieldSessionToken: token}); err != nil {
		s.repos.Sessions.Destroy(token)
		return "", errors.Wrap(err, "[CreateSession] Users.Update")
	}
	return token, nil
}

// ResolveSession returns the user behind a live session token. Unknown and
// expired tokens fail; a destroyed token never resolves again.
func (s *Service) ResolveSession(token string) (*users.User, error) {
	if token == "" {
		return nil, errs.ErrSessionNotFound
	}

	userID, err := s.repos.Sessions.Resolve(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users.FindOne(users.Filter{ID: userID})
	if err != nil {
		return nil, errs.Wrapf(errs.ErrUserNotFound, "session user %s", userID)
	}
	return user, nil
}

// DestroySession removes the session behind a token and clears the user
// record association. Idempotent: destroying an already-gone token is safe
// and returns false.
func (s *Service) DestroySession(token string) bool {
	if token == "" {
		return false
	}

	userID, err := s.repos.Sessions.Resolve(token)
	if err != nil {
		// Expired tokens are reaped by Resolve; Destroy still covers tokens
		// the store holds without a resolvable user.
		return s.repos.Sessions.Destroy(token)
	}

	unlock := s.userLocks.Lock(userID)
	defer unlock()

	existed := s.repos.Sessions.Destroy(token)

	// Only clear the user-record association when it still points at this
	// token; a newer login owns the record otherwise.
	user, err := s.repos.Users.FindOne(users.Filter{ID: userID})
	if err == nil && user.SessionToken == token {
		_ = s.repos.Users.Update(userID, users.Fields{users.FieldSessionToken: ""})
	}
	return existed
}

// DestroyUserSessions clears any session held by the user, addressed by ID
// rather than token (service-to-service flow). Idempotent.
func (s *Service) DestroyUserSessions(userID string) bool {
	if userID == "" {
		return false
	}

	unlock := s.userLocks.Lock(userID)
	defer unlock()

	user, err := s.repos.Users.FindOne(users.Filter{ID: userID})
	if err != nil {
		return false
	}

	existed := false
	if user.SessionToken != "" {
		existed = s.repos.Sessions.Destroy(user.SessionToken)
		_ = s.repos.Users.Update(userID, users.Fields{users.FieldSessionToken: ""})
	}
	return existed
}

// IssueResetToken generates a password reset token for the user behind
// email, replacing any prior token. Fails with errors.ErrUserNotFound when
// the email is unknown.
func (s *Service) IssueResetToken(email string) (string, error) {
	user, err := s.repos.Users.FindOne(users.Filter{Email: email})
	if err != nil {
		return "", errs.Wrapf(errs.ErrUserNotFound, "user %s", email)
	}

	unlock := s.userLocks.Lock(user.ID)
	defer unlock()

	token, err := s.resetTokens.Issue(user.ID)
	if err != nil {
		return "", errors.Wrap(err, "[IssueResetToken] Issue")
	}
	if err := s.repos.Users.Update(user.ID, users.Fields{users.FieldResetToken: token}); err != nil {
		_ = s.resetTokens.Revoke(user.ID)
		return "", errors.Wrap(err, "[IssueResetToken] Users.Update")
	}
	return token, nil
}

// UpdatePassword consumes a reset token and rehashes the password in one
// logical operation: under the per-user lock the token is spent and the new
// hash stored together, so no half-updated state is observable. A second
// call with the same token fails with errors.ErrInvalidResetToken.
func (s *Service) UpdatePassword(resetToken, newPassword string) error {
	if resetToken == "" {
		return errs.ErrInvalidResetToken
	}
	if err := users.ValidatePasswordStrength(newPassword); err != nil {
		return errs.Wrapf(errs.ErrValidation, "%s", err.Error())
	}

	user, err := s.repos.Users.FindOne(users.Filter{ResetToken: resetToken})
	if err != nil {
		return errs.ErrInvalidResetToken
	}

	unlock := s.userLocks.Lock(user.ID)
	defer unlock()

	if _, err := s.resetTokens.Consume(resetToken); err != nil {
		return errs.ErrInvalidResetToken
	}

	hashed, err := users.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "[UpdatePassword] HashPassword")
	}

	if err := s.repos.Users.Update(user.ID, users.Fields{
		users.FieldHashedPassword: hashed,
		users.FieldResetToken:     "",
	}); err != nil {
		return errors.Wrap(err, "[UpdatePassword] Users.Update")
	}
	return nil
}
