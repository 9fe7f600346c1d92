package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/repository"
	"github.com/campusdev/student-affairs-portal/internal/utils"
)

// ReportHandler serves the admin date-range reports.  Ranges are
// inclusive day ranges; each record type filters on its domain date
// (event start, incident date, violation date).
type ReportHandler struct {
	Bookings *repository.BookingRepo
	Concerns *repository.ConcernRepo
	Warnings *repository.WarningRepo
}

func NewReportHandler(b *repository.BookingRepo, cn *repository.ConcernRepo, w *repository.WarningRepo) *ReportHandler {
	if b == nil || cn == nil || w == nil {
		panic("nil repository passed to NewReportHandler")
	}
	return &ReportHandler{Bookings: b, Concerns: cn, Warnings: w}
}

// BookingsReport handles GET /v1/admin/reports/bookings?start_date=&end_date=.
func (h *ReportHandler) BookingsReport(c echo.Context) error {
	from, toExcl, ok := h.rangeParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must be YYYY-MM-DD with end_date not before start_date"})
	}
	bookings, err := h.Bookings.ListStartingBetween(c.Request().Context(), from, toExcl)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingResps(bookings))
}

// ConcernsReport handles GET /v1/admin/reports/concerns.
func (h *ReportHandler) ConcernsReport(c echo.Context) error {
	from, toExcl, ok := h.rangeParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must be YYYY-MM-DD with end_date not before start_date"})
	}
	concerns, err := h.Concerns.ListIncidentsBetween(c.Request().Context(), from, toExcl)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toConcernResps(concerns))
}

// WarningsReport handles GET /v1/admin/reports/warnings.
func (h *ReportHandler) WarningsReport(c echo.Context) error {
	from, toExcl, ok := h.rangeParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must be YYYY-MM-DD with end_date not before start_date"})
	}
	warnings, err := h.Warnings.ListViolationsBetween(c.Request().Context(), from, toExcl)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toWarningResps(warnings))
}

func (h *ReportHandler) rangeParams(c echo.Context) (from, toExcl time.Time, ok bool) {
	from, toExcl, err := utils.ParseDayRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, toExcl, true
}
