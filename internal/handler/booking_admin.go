package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/availability"
	"github.com/campusdev/student-affairs-portal/internal/model"
	"github.com/campusdev/student-affairs-portal/internal/queue"
	"github.com/campusdev/student-affairs-portal/internal/repository"
	queuepublisher "github.com/campusdev/student-affairs-portal/internal/service"
	"github.com/campusdev/student-affairs-portal/internal/workflow"
)

// AdminBookingHandler covers the review queue: listing requests and
// applying approve/reject decisions.
type AdminBookingHandler struct {
	Bookings *repository.BookingRepo
}

func NewAdminBookingHandler(b *repository.BookingRepo) *AdminBookingHandler {
	if b == nil {
		panic("nil repository passed to NewAdminBookingHandler")
	}
	return &AdminBookingHandler{Bookings: b}
}

// List handles GET /v1/admin/bookings with an optional ?status= filter.
func (h *AdminBookingHandler) List(c echo.Context) error {
	var filter *model.BookingStatus
	if raw := strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))); raw != "" {
		st := model.BookingStatus(raw)
		if !st.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status " + raw})
		}
		filter = &st
	}
	bookings, err := h.Bookings.List(c.Request().Context(), filter)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingResps(bookings))
}

type decisionReq struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

// Decide handles PATCH /v1/admin/bookings/:id/status.  Approval re-runs
// the availability check inside the same transaction that flips the
// status, with the facility's approved rows locked, so two conflicting
// requests can never both end up APPROVED.
func (h *AdminBookingHandler) Decide(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	target := model.BookingStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if target != model.BookingApproved && target != model.BookingRejected {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"errors": map[string][]string{"status": {"status must be APPROVED or REJECTED"}},
		})
	}

	ctx := c.Request().Context()
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err)
	}

	switch target {
	case model.BookingApproved:
		// Lock the facility's approved bookings and re-check the window;
		// the submission-time availability check was only advisory.
		approved, err := h.Bookings.ListApprovedForFacilityTx(ctx, tx, b.FacilityID)
		if err != nil {
			return respondRepoError(c, err)
		}
		win := availability.Window{Start: b.StartsAt, End: b.EndsAt}
		if conflicts := availability.Check(win, approved); len(conflicts) > 0 {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":     "booking window conflicts with an approved booking",
				"conflicts": conflicts,
			})
		}
		if err := workflow.ApproveBooking(&b); err != nil {
			return respondWorkflowError(c, err)
		}
	case model.BookingRejected:
		if err := workflow.RejectBooking(&b, req.Feedback); err != nil {
			return respondWorkflowError(c, err)
		}
	}

	if err := h.Bookings.UpdateStatusTx(ctx, tx, b.ID, b.Status, b.Feedback); err != nil {
		return respondRepoError(c, err)
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Best effort: a broker outage must not fail the decision.
	event := queue.BookingDecidedEvent{
		BookingID:    b.ID,
		StudentID:    b.StudentID,
		FacilityID:   b.FacilityID,
		FacilityName: b.FacilityName,
		EventName:    b.EventName,
		StartsAt:     b.StartsAt.Format(time.RFC3339),
		EndsAt:       b.EndsAt.Format(time.RFC3339),
		Status:       string(b.Status),
		DecidedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if b.Feedback != nil {
		event.Feedback = *b.Feedback
	}
	if err := queuepublisher.PublishBookingDecided(ctx, event); err != nil {
		log.Printf("booking %d: publish decision event failed: %v", b.ID, err)
	}

	return c.JSON(http.StatusOK, toBookingResp(b))
}
