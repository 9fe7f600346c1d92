package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/repository"
	"github.com/campusdev/student-affairs-portal/internal/workflow"
)

// getUserID pulls the authenticated user's ID out of the echo context,
// where the JWT middleware stored it.  JWT numeric claims arrive as
// float64, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// respondWorkflowError maps a workflow error to the client response.
// Validation failures carry their field map; store failures are logged
// and answered with a generic message so internals never leak.
func respondWorkflowError(c echo.Context, err error) error {
	we, ok := err.(*workflow.Error)
	if !ok {
		return respondRepoError(c, err)
	}
	switch we.Kind {
	case workflow.KindValidation:
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": we.Fields})
	case workflow.KindNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": we.Msg})
	case workflow.KindInvalidTransition:
		return c.JSON(http.StatusConflict, echo.Map{"error": we.Msg})
	case workflow.KindAuthorization:
		return c.JSON(http.StatusForbidden, echo.Map{"error": we.Msg})
	case workflow.KindConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": we.Msg})
	}
	log.Printf("workflow: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// respondRepoError maps repository sentinel errors to 404s and anything
// else to a logged 500.
func respondRepoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrFacilityNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrConcernNotFound),
		errors.Is(err, repository.ErrWarningNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	log.Printf("repository: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
