package auth_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eddybrownent/alx-backend-user-data/auth"
	"github.com/eddybrownent/alx-backend-user-data/auth/sessions"
	errs "github.com/eddybrownent/alx-backend-user-data/internal/errors"
	"github.com/eddybrownent/alx-backend-user-data/token/reset"
	"github.com/eddybrownent/alx-backend-user-data/users"
	"github.com/eddybrownent/alx-backend-user-data/users/repomem"
)

func TestExtractBasicAuthHeader(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		require.Empty(t, auth.ExtractBasicAuthHeader(""))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		require.Empty(t, auth.ExtractBasicAuthHeader("Bearer abc123"))
	})

	t.Run("basic scheme", func(t *testing.T) {
		require.Equal(t, "abc123", auth.ExtractBasicAuthHeader("Basic abc123"))
	})
}

func TestDecodeBasicAuthHeader(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("bob@x.com:secret"))
		require.Equal(t, "bob@x.com:secret", auth.DecodeBasicAuthHeader(encoded))
	})

	t.Run("invalid base64", func(t *testing.T) {
		require.Empty(t, auth.DecodeBasicAuthHeader("not-base64!!!"))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, auth.DecodeBasicAuthHeader(""))
	})
}

func TestSplitCredentials(t *testing.T) {
	t.Run("splits on first colon only", func(t *testing.T) {
		email, password := auth.SplitCredentials("bob@x.com:sec:ret")
		require.Equal(t, "bob@x.com", email)
		require.Equal(t, "sec:ret", password)
	})

	t.Run("no separator", func(t *testing.T) {
		email, password := auth.SplitCredentials("bob@x.com")
		require.Empty(t, email)
		require.Empty(t, password)
	})

	t.Run("empty input", func(t *testing.T) {
		email, password := auth.SplitCredentials("")
		require.Empty(t, email)
		require.Empty(t, password)
	})
}

func TestResolveBasicUser(t *testing.T) {
	userRepo := repomem.New()
	service, err := auth.NewService(
		auth.Repos{Users: userRepo, Sessions: sessions.NewMemoryStore()},
		reset.NewManager(reset.NewMemoryRepo()),
	)
	require.NoError(t, err)

	hashed, err := users.HashPassword("Secret123")
	require.NoError(t, err)
	_, err = userRepo.Insert(&users.User{Email: "bob@x.com", HashedPassword: hashed})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.ResolveBasicUser("bob@x.com", "Secret123")
		require.NoError(t, err)
		require.Equal(t, "bob@x.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.ResolveBasicUser("bob@x.com", "Wrong1234")
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown email collapses to same error", func(t *testing.T) {
		_, err := service.ResolveBasicUser("nobody@x.com", "Secret123")
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
