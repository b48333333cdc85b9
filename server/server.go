package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/eddybrownent/alx-backend-user-data/auth"
	"github.com/eddybrownent/alx-backend-user-data/internal/config"
)

// Server is the HTTP boundary around the auth service. It extracts the
// credential from each request, asks the service for a decision, and
// renders the response; the path-exclusion policy runs before any
// credential check.
type Server struct {
	env           string // Environment (e.g., "DEV", "PROD")
	mux           *http.ServeMux
	routes        []string
	config        config.Config
	auth          *auth.Service
	verifier      auth.CredentialVerifier
	sessionCookie string
	excludedPaths []string
}

func New(cfg config.Config, authService *auth.Service, verifier auth.CredentialVerifier) (*Server, error) {
	if authService == nil {
		return nil, errNilDependency("auth service")
	}
	if verifier == nil {
		return nil, errNilDependency("credential verifier")
	}

	s := &Server{
		mux:           http.NewServeMux(),
		config:        cfg,
		auth:          authService,
		verifier:      verifier,
		sessionCookie: cfg.GetSessionCookieName(),
		excludedPaths: cfg.GetExcludedPaths(),
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Debug().Str("route", route).Msg("registered route")
	}
}
