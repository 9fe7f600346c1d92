package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/model"
	"github.com/campusdev/student-affairs-portal/internal/repository"
	"github.com/campusdev/student-affairs-portal/internal/utils"
	"github.com/campusdev/student-affairs-portal/internal/workflow"
)

// StudentConcernHandler covers the student side of incident reports.
type StudentConcernHandler struct {
	Concerns *repository.ConcernRepo
}

func NewStudentConcernHandler(cn *repository.ConcernRepo) *StudentConcernHandler {
	if cn == nil {
		panic("nil repository passed to NewStudentConcernHandler")
	}
	return &StudentConcernHandler{Concerns: cn}
}

type concernForm struct {
	Title        string `json:"title" validate:"required,max=255"`
	Details      string `json:"details" validate:"required"`
	IncidentDate string `json:"incident_date" validate:"required,datetime=2006-01-02"`
}

// Create handles POST /v1/concerns.
func (h *StudentConcernHandler) Create(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var form concernForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if fields := utils.ValidateStruct(form); fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}
	incidentDate, err := utils.CombineDateTime(form.IncidentDate, "00:00")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"errors": map[string][]string{"incident_date": {"invalid date"}},
		})
	}

	cn := model.Concern{
		StudentID:    studentID,
		Title:        form.Title,
		Details:      form.Details,
		IncidentDate: incidentDate,
	}
	if err := h.Concerns.Create(c.Request().Context(), &cn); err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, toConcernResp(cn))
}

// ListMine handles GET /v1/concerns.
func (h *StudentConcernHandler) ListMine(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	concerns, err := h.Concerns.ListByStudent(c.Request().Context(), studentID)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toConcernResps(concerns))
}

// GetMine handles GET /v1/concerns/:id.
func (h *StudentConcernHandler) GetMine(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid concern id"})
	}
	cn, err := h.Concerns.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	if cn.StudentID != studentID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "concern belongs to another student"})
	}
	return c.JSON(http.StatusOK, toConcernResp(cn))
}

// UpdateMine handles PUT /v1/concerns/:id.  Edits are allowed only
// while the concern is still PENDING.
func (h *StudentConcernHandler) UpdateMine(c echo.Context) error {
	studentID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid concern id"})
	}
	var form concernForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if fields := utils.ValidateStruct(form); fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}
	incidentDate, err := utils.CombineDateTime(form.IncidentDate, "00:00")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"errors": map[string][]string{"incident_date": {"invalid date"}},
		})
	}

	ctx := c.Request().Context()
	cn, err := h.Concerns.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err)
	}
	if err := workflow.CanEditConcern(cn, studentID); err != nil {
		return respondWorkflowError(c, err)
	}

	cn.Title = form.Title
	cn.Details = form.Details
	cn.IncidentDate = incidentDate
	if err := h.Concerns.UpdateDetails(ctx, &cn); err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toConcernResp(cn))
}
