package router

import (
	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/handler"
	"github.com/campusdev/student-affairs-portal/internal/middleware"
)

// RegisterStudent registers the student-facing endpoints: submitting
// and tracking bookings and concerns, and reading warning slips issued
// against the authenticated student.  All routes require a STUDENT
// access token.
func RegisterStudent(e *echo.Echo, jwtSecret string,
	bookings *handler.StudentBookingHandler,
	concerns *handler.StudentConcernHandler,
	warnings *handler.WarningHandler,
) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("STUDENT"))

	g.POST("/bookings", bookings.Create)
	g.GET("/bookings", bookings.ListMine)
	g.GET("/bookings/:id", bookings.GetMine)
	// Details may be revised while the request is still pending.
	g.PUT("/bookings/:id", bookings.UpdateMine)

	g.POST("/concerns", concerns.Create)
	g.GET("/concerns", concerns.ListMine)
	g.GET("/concerns/:id", concerns.GetMine)
	g.PUT("/concerns/:id", concerns.UpdateMine)

	// Read-only: warning slips are issued and decided by admins.
	g.GET("/warnings", warnings.ListMine)
	g.GET("/warnings/:id", warnings.GetMine)
}
