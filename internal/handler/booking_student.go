package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/model"
	"github.com/campusdev/student-affairs-portal/internal/repository"
	"github.com/campusdev/student-affairs-portal/internal/utils"
	"github.com/campusdev/student-affairs-portal/internal/workflow"
)

// StudentBookingHandler covers the student-facing side of facility
// bookings: submit, list own, view own, edit while still pending.
type StudentBookingHandler struct {
	Bookings   *repository.BookingRepo
	Facilities *repository.FacilityRepo
}

func NewStudentBookingHandler(b *repository.BookingRepo, f *repository.FacilityRepo) *StudentBookingHandler {
	if b == nil || f == nil {
		panic("nil repository passed to NewStudentBookingHandler")
	}
	return &StudentBookingHandler{Bookings: b, Facilities: f}
}

type bookingForm struct {
	FacilityID     uint64  `json:"facility_id" validate:"required,gt=0"`
	EventName      string  `json:"event_name" validate:"required,max=255"`
	Purpose        string  `json:"purpose" validate:"required"`
	Organization   string  `json:"organization" validate:"required,max=255"`
	ContactNumber  string  `json:"contact_number" validate:"required,max=32"`
	EstAttendance  *uint32 `json:"est_attendance" validate:"omitempty,gt=0"`
	EventStartDate string  `json:"event_start_date" validate:"required,datetime=2006-01-02"`
	EventStartTime string  `json:"event_start_time" validate:"required,datetime=15:04"`
	EventEndDate   string  `json:"event_end_date" validate:"required,datetime=2006-01-02"`
	EventEndTime   string  `json:"event_end_time" validate:"required,datetime=15:04"`
}

// Create handles POST /v1/bookings.  The booking starts PENDING no
// matter what the advisory availability check said; conflicts are
// enforced at approval time.
func (h *StudentBookingHandler) Create(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var form bookingForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if fields := utils.ValidateStruct(form); fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}
	win, fields := parseWindow(form.EventStartDate, form.EventStartTime, form.EventEndDate, form.EventEndTime)
	if fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}

	ctx := c.Request().Context()
	facility, err := h.Facilities.GetByID(ctx, form.FacilityID)
	if err != nil {
		if err == repository.ErrFacilityNotFound {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"errors": map[string][]string{"facility_id": {"unknown facility"}},
			})
		}
		return respondRepoError(c, err)
	}

	b := model.Booking{
		StudentID:     studentID,
		FacilityID:    facility.ID,
		FacilityName:  facility.Name, // snapshot at submission time
		EventName:     form.EventName,
		Purpose:       form.Purpose,
		Organization:  form.Organization,
		ContactNumber: form.ContactNumber,
		EstAttendance: form.EstAttendance,
		StartsAt:      win.Start,
		EndsAt:        win.End,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, toBookingResp(b))
}

// ListMine handles GET /v1/bookings.
func (h *StudentBookingHandler) ListMine(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookings, err := h.Bookings.ListByStudent(c.Request().Context(), studentID)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingResps(bookings))
}

// GetMine handles GET /v1/bookings/:id.  Students may only read their
// own bookings.
func (h *StudentBookingHandler) GetMine(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	if b.StudentID != studentID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "booking belongs to another student"})
	}
	return c.JSON(http.StatusOK, toBookingResp(b))
}

// UpdateMine handles PUT /v1/bookings/:id.  Editing is gated by the
// workflow: owner only, and only while the booking is still PENDING.
func (h *StudentBookingHandler) UpdateMine(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var form bookingForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if fields := utils.ValidateStruct(form); fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}
	win, fields := parseWindow(form.EventStartDate, form.EventStartTime, form.EventEndDate, form.EventEndTime)
	if fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}

	ctx := c.Request().Context()
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err)
	}
	if err := workflow.CanEditBooking(b, studentID); err != nil {
		return respondWorkflowError(c, err)
	}

	facility, err := h.Facilities.GetByID(ctx, form.FacilityID)
	if err != nil {
		if err == repository.ErrFacilityNotFound {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"errors": map[string][]string{"facility_id": {"unknown facility"}},
			})
		}
		return respondRepoError(c, err)
	}

	b.FacilityID = facility.ID
	b.FacilityName = facility.Name // re-snapshot: the facility may differ
	b.EventName = form.EventName
	b.Purpose = form.Purpose
	b.Organization = form.Organization
	b.ContactNumber = form.ContactNumber
	b.EstAttendance = form.EstAttendance
	b.StartsAt = win.Start
	b.EndsAt = win.End
	if err := h.Bookings.UpdateDetails(ctx, &b); err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingResp(b))
}
