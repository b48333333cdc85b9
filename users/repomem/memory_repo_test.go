package repomem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/users"
	"github.com/eddybrownent/alx-backend-user-data/users/repomem"
)

func TestInsert(t *testing.T) {
	repo := repomem.New()

	user, err := repo.Insert(&users.User{Email: "bob@x.com", HashedPassword: "hash"})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := repo.Insert(&users.User{Email: "bob@x.com", HashedPassword: "other"})
		require.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestFindOne(t *testing.T) {
	repo := repomem.New()
	user, err := repo.Insert(&users.User{
		Email:          "bob@x.com",
		HashedPassword: "hash",
		SessionToken:   "session-1",
		ResetToken:     "reset-1",
	})
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindOne(users.Filter{ID: user.ID})
		require.NoError(t, err)
		require.Equal(t, "bob@x.com", found.Email)
	})

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindOne(users.Filter{Email: "bob@x.com"})
		require.NoError(t, err)
		require.Equal(t, user.ID, found.ID)
	})

	t.Run("by session token", func(t *testing.T) {
		found, err := repo.FindOne(users.Filter{SessionToken: "session-1"})
		require.NoError(t, err)
		require.Equal(t, user.ID, found.ID)
	})

	t.Run("by reset token", func(t *testing.T) {
		found, err := repo.FindOne(users.Filter{ResetToken: "reset-1"})
		require.NoError(t, err)
		require.Equal(t, user.ID, found.ID)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := repo.FindOne(users.Filter{Email: "nobody@x.com"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("empty filter rejected", func(t *testing.T) {
		_, err := repo.FindOne(users.Filter{})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		found, err := repo.FindOne(users.Filter{ID: user.ID})
		require.NoError(t, err)
		found.Email = "mutated@x.com"

		again, err := repo.FindOne(users.Filter{ID: user.ID})
		require.NoError(t, err)
		require.Equal(t, "bob@x.com", again.Email)
	})
}

func TestUpdate(t *testing.T) {
	repo := repomem.New()
	user, err := repo.Insert(&users.User{Email: "bob@x.com", HashedPassword: "hash"})
	require.NoError(t, err)

	t.Run("known fields", func(t *testing.T) {
		err := repo.Update(user.ID, users.Fields{
			users.FieldSessionToken: "session-2",
			users.FieldResetToken:   "reset-2",
		})
		require.NoError(t, err)

		found, err := repo.FindOne(users.Filter{ID: user.ID})
		require.NoError(t, err)
		require.Equal(t, "session-2", found.SessionToken)
		require.Equal(t, "reset-2", found.ResetToken)
	})

	t.Run("email update keeps the index current", func(t *testing.T) {
		require.NoError(t, repo.Update(user.ID, users.Fields{users.FieldEmail: "new@x.com"}))

		_, err := repo.FindOne(users.Filter{Email: "bob@x.com"})
		require.ErrorIs(t, err, errs.ErrNotFound)

		found, err := repo.FindOne(users.Filter{Email: "new@x.com"})
		require.NoError(t, err)
		require.Equal(t, user.ID, found.ID)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := repo.Update(user.ID, users.Fields{"favorite_color": "blue"})
		require.ErrorIs(t, err, errs.ErrUnknownField)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := repo.Update("missing-id", users.Fields{users.FieldSessionToken: "x"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
