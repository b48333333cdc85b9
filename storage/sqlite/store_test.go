package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/storage/sqlite"
	"github.com/eddybrownent/alx-backend-user-data/token/reset"
	"github.com/eddybrownent/alx-backend-user-data/users"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) nowTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func openTestStore(t *testing.T) (*sqlite.Store, *testClock) {
	t.Helper()

	clock := &testClock{now: time.Now()}
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "auth.db"), sqlite.WithNowTime(clock.nowTime))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, clock
}

func TestOpen(t *testing.T) {
	t.Run("empty path rejected", func(t *testing.T) {
		_, err := sqlite.Open("")
		require.Error(t, err)
	})

	t.Run("schema survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "auth.db")

		store, err := sqlite.Open(path)
		require.NoError(t, err)
		user, err := store.Insert(&users.User{Email: "bob@x.com", HashedPassword: "hash"})
		require.NoError(t, err)
		require.NoError(t, store.Close())

		reopened, err := sqlite.Open(path)
		require.NoError(t, err)
		defer reopened.Close()

		found, err := reopened.FindOne(users.Filter{Email: "bob@x.com"})
		require.NoError(t, err)
		require.Equal(t, user.ID, found.ID)
	})
}

func TestUserRepo(t *testing.T) {
	store, _ := openTestStore(t)

	user, err := store.Insert(&users.User{Email: "bob@x.com", HashedPassword: "hash"})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := store.Insert(&users.User{Email: "bob@x.com", HashedPassword: "other"})
		require.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("find one by each filter", func(t *testing.T) {
		require.NoError(t, store.Update(user.ID, users.Fields{
			users.FieldSessionToken: "session-1",
			users.FieldResetToken:   "reset-1",
		}))

		for name, filter := range map[string]users.Filter{
			"id":            {ID: user.ID},
			"email":         {Email: "bob@x.com"},
			"session token": {SessionToken: "session-1"},
			"reset token":   {ResetToken: "reset-1"},
		} {
			found, err := store.FindOne(filter)
			require.NoError(t, err, name)
			require.Equal(t, user.ID, found.ID, name)
		}
	})

	t.Run("empty filter rejected", func(t *testing.T) {
		_, err := store.FindOne(users.Filter{})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("lookup miss", func(t *testing.T) {
		_, err := store.FindOne(users.Filter{Email: "nobody@x.com"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown update field", func(t *testing.T) {
		err := store.Update(user.ID, users.Fields{"favorite_color": "blue"})
		require.ErrorIs(t, err, errs.ErrUnknownField)
	})

	t.Run("update of missing user", func(t *testing.T) {
		err := store.Update("missing-id", users.Fields{users.FieldSessionToken: "x"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestSessionStore(t *testing.T) {
	store, clock := openTestStore(t)

	user, err := store.Insert(&users.User{Email: "bob@x.com", HashedPassword: "hash"})
	require.NoError(t, err)

	t.Run("requires user id", func(t *testing.T) {
		_, err := store.Create("", 0)
		require.Error(t, err)
	})

	t.Run("create and resolve", func(t *testing.T) {
		token, err := store.Create(user.ID, 0)
		require.NoError(t, err)

		userID, err := store.Resolve(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, userID)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := store.Resolve("never-issued")
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("expiry", func(t *testing.T) {
		token, err := store.Create(user.ID, 1*time.Second)
		require.NoError(t, err)

		_, err = store.Resolve(token)
		require.NoError(t, err)

		clock.advance(2 * time.Second)
		_, err = store.Resolve(token)
		require.ErrorIs(t, err, errs.ErrSessionExpired)

		_, err = store.Resolve(token)
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("database error surfaces instead of retrying", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "closed.db")
		closed, err := sqlite.Open(path)
		require.NoError(t, err)
		require.NoError(t, closed.Close())

		_, err = closed.Create(user.ID, 0)
		require.Error(t, err)
	})

	t.Run("destroy is idempotent", func(t *testing.T) {
		token, err := store.Create(user.ID, 0)
		require.NoError(t, err)

		require.True(t, store.Destroy(token))
		require.False(t, store.Destroy(token))

		_, err = store.Resolve(token)
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestResetRepo(t *testing.T) {
	store, _ := openTestStore(t)
	manager := reset.NewManager(store)

	t.Run("issue and consume", func(t *testing.T) {
		token, err := manager.Issue("user-1")
		require.NoError(t, err)

		userID, err := manager.Consume(token)
		require.NoError(t, err)
		require.Equal(t, "user-1", userID)

		_, err = manager.Consume(token)
		require.ErrorIs(t, err, errs.ErrInvalidResetToken)
	})

	t.Run("reissue overwrites", func(t *testing.T) {
		first, err := manager.Issue("user-2")
		require.NoError(t, err)
		second, err := manager.Issue("user-2")
		require.NoError(t, err)

		_, err = manager.Consume(first)
		require.ErrorIs(t, err, errs.ErrInvalidResetToken)
		userID, err := manager.Consume(second)
		require.NoError(t, err)
		require.Equal(t, "user-2", userID)
	})
}
