package availability

import (
	"testing"
	"time"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func win(sh, sm, eh, em int) Window {
	return Window{Start: at(sh, sm), End: at(eh, em)}
}

func approved(id uint64, w Window) model.Booking {
	return model.Booking{
		ID:           id,
		EventName:    "Org Fair",
		Organization: "Student Council",
		StartsAt:     w.Start,
		EndsAt:       w.End,
		Status:       model.BookingApproved,
	}
}

func TestOverlaps_TouchingBoundaryConflicts(t *testing.T) {
	// Existing [10:00,12:00), request [12:00,13:00): adjacent under
	// open-interval semantics, but the inclusive rule treats the shared
	// boundary as a conflict.
	existing := win(10, 0, 12, 0)
	req := win(12, 0, 13, 0)
	if !Overlaps(req, existing) {
		t.Fatalf("expected boundary-touching windows to conflict")
	}
	// Same in the other direction: request ends where existing starts.
	if !Overlaps(win(9, 0, 10, 0), existing) {
		t.Fatalf("expected request ending at existing start to conflict")
	}
}

func TestOverlaps_ExistingEnclosesRequest(t *testing.T) {
	existing := win(9, 0, 11, 0)
	req := win(9, 30, 10, 30)
	if !Overlaps(req, existing) {
		t.Fatalf("expected enclosed request to conflict")
	}
}

func TestOverlaps_RequestEnclosesExisting(t *testing.T) {
	existing := win(9, 0, 11, 0)
	req := win(8, 0, 12, 0)
	if !Overlaps(req, existing) {
		t.Fatalf("expected request enclosing existing to conflict")
	}
}

func TestOverlaps_DisjointWindows(t *testing.T) {
	existing := win(10, 0, 12, 0)
	if Overlaps(win(13, 0, 14, 0), existing) {
		t.Fatalf("later disjoint window must not conflict")
	}
	if Overlaps(win(7, 0, 9, 59), existing) {
		t.Fatalf("earlier disjoint window must not conflict")
	}
}

func TestCheck_SkipsNonApproved(t *testing.T) {
	req := win(10, 0, 11, 0)
	pending := approved(1, win(10, 0, 11, 0))
	pending.Status = model.BookingPending
	rejected := approved(2, win(10, 0, 11, 0))
	rejected.Status = model.BookingRejected

	if got := Check(req, []model.Booking{pending, rejected}); len(got) != 0 {
		t.Fatalf("pending/rejected bookings must never block, got %d conflicts", len(got))
	}
}

func TestCheck_ReturnsCompleteConflictList(t *testing.T) {
	req := win(9, 0, 17, 0)
	rows := []model.Booking{
		approved(1, win(8, 0, 10, 0)),
		approved(2, win(11, 0, 12, 0)),
		approved(3, win(16, 0, 18, 0)),
		approved(4, win(18, 30, 19, 0)), // disjoint
	}
	got := Check(req, rows)
	if len(got) != 3 {
		t.Fatalf("expected 3 conflicts, got %d", len(got))
	}
	ids := map[uint64]bool{}
	for _, c := range got {
		ids[c.BookingID] = true
	}
	for _, want := range []uint64{1, 2, 3} {
		if !ids[want] {
			t.Fatalf("conflict list missing booking %d", want)
		}
	}
}

func TestForAllFacilities_EveryFacilityAppears(t *testing.T) {
	facilities := []model.Facility{
		{ID: 1, Name: "AVR 1"},
		{ID: 2, Name: "Gymnasium"},
		{ID: 3, Name: "Conference Hall"},
	}
	req := win(10, 0, 12, 0)
	byFacility := map[uint64][]model.Booking{
		2: {approved(7, win(11, 0, 13, 0))},
	}

	out := ForAllFacilities(facilities, req, byFacility)
	if len(out) != len(facilities) {
		t.Fatalf("expected %d entries, got %d", len(facilities), len(out))
	}
	for _, f := range facilities {
		r, ok := out[f.ID]
		if !ok {
			t.Fatalf("facility %d missing from result", f.ID)
		}
		if r.FacilityName != f.Name {
			t.Fatalf("facility %d name mismatch: %q", f.ID, r.FacilityName)
		}
	}
	if out[1].IsAvailable != true || len(out[1].Conflicts) != 0 {
		t.Fatalf("facility with no bookings must be available")
	}
	if out[2].IsAvailable {
		t.Fatalf("facility 2 should conflict")
	}
	if len(out[2].Conflicts) != 1 || out[2].Conflicts[0].BookingID != 7 {
		t.Fatalf("facility 2 should report booking 7 as the conflict")
	}
}

func TestForFacility_ExactWindowRoundTrip(t *testing.T) {
	// A booking created with window [S,E) blocks that exact window once
	// approved, and only then.
	f := model.Facility{ID: 5, Name: "AVR 2"}
	w := win(14, 0, 16, 0)
	b := approved(42, w)

	r := ForFacility(f, w, []model.Booking{b})
	if r.IsAvailable {
		t.Fatalf("approved booking must block its own window")
	}
	if len(r.Conflicts) != 1 || r.Conflicts[0].BookingID != 42 {
		t.Fatalf("expected exactly the created booking in conflicts, got %+v", r.Conflicts)
	}

	b.Status = model.BookingPending
	r = ForFacility(f, w, []model.Booking{b})
	if !r.IsAvailable || len(r.Conflicts) != 0 {
		t.Fatalf("pending booking must leave the window available")
	}
}
