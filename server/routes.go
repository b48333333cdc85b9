package server

import "fmt"

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteStatus, ChainMiddleware(s.StatusHandler(), s.APIMiddleware()...))

	// Registration
	s.RegisterRouteFunc("POST "+RouteUsers, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))

	// Session login/logout
	s.RegisterRouteFunc("POST "+RouteSessionLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("DELETE "+RouteSessionLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// Current user (requires credentials unless the path is excluded)
	s.RegisterRouteFunc("GET "+RouteMe, ChainMiddleware(s.MeHandler(), s.APIMiddleware()...))

	// Password reset flow
	s.RegisterRouteFunc("POST "+RouteResetPassword, ChainMiddleware(s.IssueResetTokenHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("PUT "+RouteResetPassword, ChainMiddleware(s.UpdatePasswordHandler(), s.APIMiddleware()...))
}

func errNilDependency(name string) error {
	return fmt.Errorf("[Server New] %s is required", name)
}
