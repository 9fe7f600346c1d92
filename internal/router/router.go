// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/handler"
	"github.com/campusdev/student-affairs-portal/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers and monitoring to verify the service is
// up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication routes and the protected /v1/me
// endpoint.  Unauthenticated operations live under /v1/auth; /v1/me
// requires a valid access token from either role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Issue a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts a refresh token in the body, or a bearer token to
	// terminate every session; it does not require the JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(
		"STUDENT", "ADMIN",
	))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the facility registry endpoints.  They
// require no authentication: the booking form shows facilities and runs
// the advisory availability check before the student logs their
// request.  The cache middleware (redis-backed, may be a no-op) wraps
// the facility list since it is seeded data.
func RegisterPublic(e *echo.Echo, f *handler.FacilityHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/facilities", f.List, cache)
	e.POST("/v1/facilities/check-availability", f.CheckAvailability)
}
