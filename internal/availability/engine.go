// Package availability implements the facility conflict engine.  It is a
// pure, read-only evaluation over bookings loaded by the caller: given a
// requested time window it reports which Approved bookings collide with
// it, per facility.  Nothing here touches the database.
package availability

import (
	"time"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// Window is a half-open booking window [Start, End).  Callers must
// guarantee End is after Start before handing a Window to the engine;
// a degenerate window is a validation error upstream, not an engine
// concern.
type Window struct {
	Start time.Time
	End   time.Time
}

// Conflict describes one Approved booking that collides with a requested
// window.  It carries enough detail for the frontend to show the student
// what is blocking the slot.
type Conflict struct {
	BookingID    uint64    `json:"booking_id"`
	EventName    string    `json:"event_name"`
	Organization string    `json:"organization"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
}

// Result is the per-facility availability verdict.  Conflicts is always
// the complete list, never truncated.
type Result struct {
	FacilityID   uint64     `json:"facility_id"`
	FacilityName string     `json:"facility_name"`
	IsAvailable  bool       `json:"is_available"`
	Conflicts    []Conflict `json:"conflicts"`
}

// Overlaps reports whether an existing window collides with the request
// under the portal's inclusive boundary rule.  Three cases conflict:
// the existing start falls within [req.Start, req.End], the existing end
// falls within [req.Start, req.End], or the existing window fully
// encloses the request.  The bounds are deliberately inclusive, so
// back-to-back bookings that merely touch at a boundary still conflict.
func Overlaps(req, existing Window) bool {
	within := func(t time.Time) bool {
		return !t.Before(req.Start) && !t.After(req.End)
	}
	if within(existing.Start) || within(existing.End) {
		return true
	}
	// existing encloses the request entirely
	return !existing.Start.After(req.Start) && !existing.End.Before(req.End)
}

// Check returns every booking in approved whose window conflicts with
// req.  Only Approved bookings may be passed in; the engine does not
// re-filter by status because the repository query already does, but a
// non-approved row slipping through must never block a slot, so status
// is checked again here.
func Check(req Window, approved []model.Booking) []Conflict {
	var conflicts []Conflict
	for _, b := range approved {
		if b.Status != model.BookingApproved {
			continue
		}
		if Overlaps(req, Window{Start: b.StartsAt, End: b.EndsAt}) {
			conflicts = append(conflicts, Conflict{
				BookingID:    b.ID,
				EventName:    b.EventName,
				Organization: b.Organization,
				StartsAt:     b.StartsAt,
				EndsAt:       b.EndsAt,
			})
		}
	}
	return conflicts
}

// ForFacility evaluates a single facility.  The caller resolves the
// facility (and returns its not-found error) before loading the approved
// bookings passed here.
func ForFacility(f model.Facility, req Window, approved []model.Booking) Result {
	conflicts := Check(req, approved)
	return Result{
		FacilityID:   f.ID,
		FacilityName: f.Name,
		IsAvailable:  len(conflicts) == 0,
		Conflicts:    conflicts,
	}
}

// ForAllFacilities evaluates every known facility against the request.
// Each facility appears in the result exactly once; a facility with no
// approved bookings in approvedByFacility is simply available.  The
// result is keyed by facility ID.
func ForAllFacilities(facilities []model.Facility, req Window, approvedByFacility map[uint64][]model.Booking) map[uint64]Result {
	out := make(map[uint64]Result, len(facilities))
	for _, f := range facilities {
		out[f.ID] = ForFacility(f, req, approvedByFacility[f.ID])
	}
	return out
}
