package router

import (
	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/handler"
	"github.com/campusdev/student-affairs-portal/internal/middleware"
)

// RegisterAdmin registers the review endpoints under /v1/admin.  All
// routes require an ADMIN access token.
func RegisterAdmin(e *echo.Echo, jwtSecret string,
	bookings *handler.AdminBookingHandler,
	concerns *handler.AdminConcernHandler,
	warnings *handler.WarningHandler,
	reports *handler.ReportHandler,
) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))

	g.GET("/bookings", bookings.List)
	g.PATCH("/bookings/:id/status", bookings.Decide)

	g.GET("/concerns", concerns.List)
	g.GET("/concerns/:id", concerns.Get)
	g.PUT("/concerns/:id/status", concerns.SetStatus)
	g.PUT("/concerns/:id/feedback", concerns.SetFeedback)

	g.POST("/warnings", warnings.Create)
	g.GET("/warnings", warnings.List)
	g.PATCH("/warnings/:id/status", warnings.SetStatus)

	g.GET("/reports/bookings", reports.BookingsReport)
	g.GET("/reports/concerns", reports.ConcernsReport)
	g.GET("/reports/warnings", reports.WarningsReport)
}
