package server

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eddybrownent/alx-backend-user-data/auth"
	"github.com/eddybrownent/alx-backend-user-data/auth/sessions"
	"github.com/eddybrownent/alx-backend-user-data/internal/config"
	"github.com/eddybrownent/alx-backend-user-data/storage/sqlite"
	"github.com/eddybrownent/alx-backend-user-data/token/reset"
	"github.com/eddybrownent/alx-backend-user-data/users"
	"github.com/eddybrownent/alx-backend-user-data/users/repomem"
)

// Bootstrap wires the storage backing, auth service and credential verifier
// selected by AUTH_TYPE, and returns the ready server plus a close function
// for the persisted backing.
func Bootstrap(cfg config.Config) (*Server, func() error, error) {
	authType := cfg.GetAuthType()

	var (
		userRepo     users.Repo
		sessionStore sessions.Store
		resetRepo    reset.Repo
		closer       = func() error { return nil }
	)

	switch authType {
	case config.AuthTypeSessionDB:
		folder := cfg.GetDataFolder()
		if err := os.MkdirAll(folder, 0o750); err != nil {
			return nil, nil, fmt.Errorf("[Bootstrap] create data folder: %w", err)
		}
		store, err := sqlite.Open(filepath.Join(folder, "auth.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("[Bootstrap] open sqlite store: %w", err)
		}
		userRepo, sessionStore, resetRepo = store, store, store
		closer = store.Close
	case config.AuthTypeBasic, config.AuthTypeSession, config.AuthTypeSessionExp:
		userRepo = repomem.New()
		sessionStore = sessions.NewMemoryStore()
		resetRepo = reset.NewMemoryRepo()
	default:
		return nil, nil, fmt.Errorf("[Bootstrap] unknown auth type %q", authType)
	}

	// Only the expiring variants apply a session lifetime.
	var duration time.Duration
	if authType == config.AuthTypeSessionExp || authType == config.AuthTypeSessionDB {
		duration = cfg.GetSessionDuration()
	}

	authService, err := auth.NewService(
		auth.Repos{Users: userRepo, Sessions: sessionStore},
		reset.NewManager(resetRepo),
		auth.WithSessionDuration(duration),
	)
	if err != nil {
		_ = closer()
		return nil, nil, fmt.Errorf("[Bootstrap] create auth service: %w", err)
	}

	var verifier auth.CredentialVerifier
	if authType == config.AuthTypeBasic {
		verifier = auth.NewBasicVerifier(authService)
	} else {
		verifier = auth.NewSessionVerifier(authService, cfg.GetSessionCookieName())
	}

	srv, err := New(cfg, authService, verifier)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	return srv, closer, nil
}
