package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/model"
	"github.com/campusdev/student-affairs-portal/internal/repository"
	"github.com/campusdev/student-affairs-portal/internal/workflow"
)

// AdminConcernHandler covers the admin side of incident reports:
// listing, status transitions and feedback.
type AdminConcernHandler struct {
	Concerns *repository.ConcernRepo
}

func NewAdminConcernHandler(cn *repository.ConcernRepo) *AdminConcernHandler {
	if cn == nil {
		panic("nil repository passed to NewAdminConcernHandler")
	}
	return &AdminConcernHandler{Concerns: cn}
}

// List handles GET /v1/admin/concerns with an optional ?status= filter.
func (h *AdminConcernHandler) List(c echo.Context) error {
	var filter *model.ConcernStatus
	if raw := strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))); raw != "" {
		st := model.ConcernStatus(raw)
		if !st.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status " + raw})
		}
		filter = &st
	}
	concerns, err := h.Concerns.List(c.Request().Context(), filter)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toConcernResps(concerns))
}

// Get handles GET /v1/admin/concerns/:id.
func (h *AdminConcernHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid concern id"})
	}
	cn, err := h.Concerns.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toConcernResp(cn))
}

type concernStatusReq struct {
	Status string `json:"status"`
}

// SetStatus handles PUT /v1/admin/concerns/:id/status.
func (h *AdminConcernHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid concern id"})
	}
	var req concernStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	cn, err := h.Concerns.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err)
	}
	target := model.ConcernStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err := workflow.TransitionConcern(&cn, target); err != nil {
		return respondWorkflowError(c, err)
	}
	if err := h.Concerns.UpdateStatus(ctx, cn.ID, cn.Status); err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toConcernResp(cn))
}

type concernFeedbackReq struct {
	Feedback string `json:"feedback"`
}

// SetFeedback handles PUT /v1/admin/concerns/:id/feedback.  Feedback is
// independent of status changes and may be revised until the concern
// closes.
func (h *AdminConcernHandler) SetFeedback(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid concern id"})
	}
	var req concernFeedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	cn, err := h.Concerns.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err)
	}
	if err := workflow.AttachConcernFeedback(&cn, req.Feedback); err != nil {
		return respondWorkflowError(c, err)
	}
	if err := h.Concerns.UpdateFeedback(ctx, cn.ID, *cn.Feedback); err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(http.StatusOK, toConcernResp(cn))
}
