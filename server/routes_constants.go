package server

// API route paths
const (
	RouteStatus        = "/api/v1/status"
	RouteUsers         = "/api/v1/users"
	RouteMe            = "/api/v1/users/me"
	RouteSessionLogin  = "/api/v1/auth_session/login"
	RouteSessionLogout = "/api/v1/auth_session/logout"
	RouteResetPassword = "/api/v1/reset_password"
)
