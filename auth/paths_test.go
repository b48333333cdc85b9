package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eddybrownent/alx-backend-user-data/auth"
)

func TestRequiresAuth(t *testing.T) {
	excluded := []string{"/api/v1/status/", "/api/v1/users/*"}

	tests := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{"empty path fails safe", "", excluded, true},
		{"nil exclusions fail safe", "/api/v1/status/", nil, true},
		{"unlisted path requires auth", "/api/v1/sessions", []string{"/api/v1/status/"}, true},
		{"exact match", "/api/v1/status/", []string{"/api/v1/status/"}, false},
		{"trailing slash on path tolerated", "/api/v1/status", []string{"/api/v1/status/"}, false},
		{"trailing slash on pattern tolerated", "/api/v1/status/", []string{"/api/v1/status"}, false},
		{"wildcard prefix match", "/api/v1/users/1", excluded, false},
		{"wildcard matches bare prefix", "/api/v1/users/", excluded, false},
		{"wildcard does not leak siblings", "/api/v1/user-data", []string{"/api/v1/users/*"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, auth.RequiresAuth(tc.path, tc.excluded))
		})
	}
}
