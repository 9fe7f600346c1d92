package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/availability"
	"github.com/campusdev/student-affairs-portal/internal/repository"
	"github.com/campusdev/student-affairs-portal/internal/utils"
)

// FacilityHandler serves the facility registry and the availability
// check the booking form runs before submission.
type FacilityHandler struct {
	Facilities *repository.FacilityRepo
	Bookings   *repository.BookingRepo
}

func NewFacilityHandler(f *repository.FacilityRepo, b *repository.BookingRepo) *FacilityHandler {
	if f == nil || b == nil {
		panic("nil repository passed to NewFacilityHandler")
	}
	return &FacilityHandler{Facilities: f, Bookings: b}
}

// List handles GET /v1/facilities.  The response sits behind the redis
// cache middleware; facilities are seeded data and change rarely.
func (h *FacilityHandler) List(c echo.Context) error {
	facilities, err := h.Facilities.ListActive(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err)
	}
	out := make([]facilityResp, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, toFacilityResp(f))
	}
	return c.JSON(http.StatusOK, out)
}

type availabilityReq struct {
	FacilityID     uint64 `json:"facility_id"` // 0 = all facilities
	EventStartDate string `json:"event_start_date" validate:"required,datetime=2006-01-02"`
	EventStartTime string `json:"event_start_time" validate:"required,datetime=15:04"`
	EventEndDate   string `json:"event_end_date" validate:"required,datetime=2006-01-02"`
	EventEndTime   string `json:"event_end_time" validate:"required,datetime=15:04"`
}

// CheckAvailability handles POST /v1/facilities/check-availability.
// Without facility_id it evaluates every facility and returns a map
// keyed by facility id; with facility_id it evaluates that one facility
// and 404s when the id is unknown.
func (h *FacilityHandler) CheckAvailability(c echo.Context) error {
	var req availabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if fields := utils.ValidateStruct(req); fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}
	win, fields := parseWindow(req.EventStartDate, req.EventStartTime, req.EventEndDate, req.EventEndTime)
	if fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fields})
	}

	ctx := c.Request().Context()

	if req.FacilityID != 0 {
		f, err := h.Facilities.GetByID(ctx, req.FacilityID)
		if err != nil {
			return respondRepoError(c, err)
		}
		approved, err := h.Bookings.ListApprovedForFacility(ctx, f.ID)
		if err != nil {
			return respondRepoError(c, err)
		}
		return c.JSON(http.StatusOK, availability.ForFacility(f, win, approved))
	}

	facilities, err := h.Facilities.ListActive(ctx)
	if err != nil {
		return respondRepoError(c, err)
	}
	byFacility, err := h.Bookings.ApprovedByFacility(ctx)
	if err != nil {
		return respondRepoError(c, err)
	}
	results := availability.ForAllFacilities(facilities, win, byFacility)

	// JSON object keys are strings; keep facility ids readable.
	out := make(map[string]availability.Result, len(results))
	for id, r := range results {
		out[strconv.FormatUint(id, 10)] = r
	}
	return c.JSON(http.StatusOK, out)
}

// parseWindow combines the split date/time fields into a half-open
// window and enforces end > start.  Errors come back as a field map so
// the form can highlight the offending inputs.
func parseWindow(startDate, startTime, endDate, endTime string) (availability.Window, map[string][]string) {
	start, err := utils.CombineDateTime(startDate, startTime)
	if err != nil {
		return availability.Window{}, map[string][]string{"event_start_date": {"invalid date or time"}}
	}
	end, err := utils.CombineDateTime(endDate, endTime)
	if err != nil {
		return availability.Window{}, map[string][]string{"event_end_date": {"invalid date or time"}}
	}
	if !end.After(start) {
		return availability.Window{}, map[string][]string{"event_end_date": {"event end must be after event start"}}
	}
	return availability.Window{Start: start, End: end}, nil
}
