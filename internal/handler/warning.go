package handler

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/model"
	"github.com/campusdev/student-affairs-portal/internal/repository"
	"github.com/campusdev/student-affairs-portal/internal/utils"
	"github.com/campusdev/student-affairs-portal/internal/workflow"
)

// WarningHandler covers disciplinary warning slips.  Admins issue and
// resolve/dismiss slips; students can only read slips issued against
// them.
type WarningHandler struct {
	Warnings *repository.WarningRepo
	Users    *repository.UserRepo
}

func NewWarningHandler(w *repository.WarningRepo, u *repository.UserRepo) *WarningHandler {
	if w == nil || u == nil {
		panic("nil repository passed to NewWarningHandler")
	}
	return &WarningHandler{Warnings: w, Users: u}
}

type warningForm struct {
	StudentID     uint64  `json:"student_id" validate:"required,gt=0"`
	StudentName   string  `json:"student_name" validate:"required,max=255"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=32"`
	Address       *string `json:"address" validate:"omitempty,max=255"`
	ViolationType string  `json:"violation_type" validate:"required,max=255"`
	Details       string  `json:"details" validate:"required"`
	ViolationDate string  `json:"violation_date" validate:"required,datetime=2006-01-02"`
}

// Create handles POST /v1/admin/warnings.
func (h *WarningHandler) Create(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var form warningForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if fields := utils.ValidateStruct(form); fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}
	violationDate, err := utils.CombineDateTime(form.ViolationDate, "00:00")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"errors": map[string][]string{"violation_date": {"invalid date"}},
		})
	}

	ctx := c.Request().Context()
	// The slip must target a real student account.
	student, err := h.Users.GetByID(ctx, form.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"errors": map[string][]string{"student_id": {"unknown student"}},
			})
		}
		return respondRepoError(c, err)
	}
	if student.Role != model.RoleStudent {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"errors": map[string][]string{"student_id": {"warning slips can only be issued to students"}},
		})
	}

	w := model.WarningSlip{
		StudentID:     student.ID,
		IssuedBy:      adminID,
		StudentName:   form.StudentName,
		ContactNumber: form.ContactNumber,
		Address:       form.Address,
		ViolationType: form.ViolationType,
		Details:       form.Details,
		ViolationDate: violationDate,
	}
	if err := h.Warnings.Create(ctx, &w); err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, toWarningResp(w))
}

// List handles GET /v1/admin/warnings with an optional ?status= filter.
func (h *WarningHandler) List(c echo.Context) error {
	var filter *model.WarningStatus
	if raw := strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))); raw != "" {
		st := model.WarningStatus(raw)
		if !st.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status " + raw})
		}
		filter = &st
	}
	warnings, err := h.Warnings.List(c.Request().Context(), filter)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toWarningResps(warnings))
}

type warningStatusReq struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

// SetStatus handles PATCH /v1/admin/warnings/:id/status.  Dismissal
// requires a reason; it is persisted alongside the status.
func (h *WarningHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid warning id"})
	}
	var req warningStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	w, err := h.Warnings.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err)
	}
	target := model.WarningStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err := workflow.TransitionWarning(&w, target, req.Feedback); err != nil {
		return respondWorkflowError(c, err)
	}
	if err := h.Warnings.UpdateStatus(ctx, w.ID, w.Status, w.Feedback); err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toWarningResp(w))
}

// ListMine handles GET /v1/warnings: the slips issued against the
// authenticated student.
func (h *WarningHandler) ListMine(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	warnings, err := h.Warnings.ListByStudent(c.Request().Context(), studentID)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toWarningResps(warnings))
}

// GetMine handles GET /v1/warnings/:id.
func (h *WarningHandler) GetMine(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid warning id"})
	}
	w, err := h.Warnings.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	if w.StudentID != studentID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "warning slip belongs to another student"})
	}
	return c.JSON(http.StatusOK, toWarningResp(w))
}
