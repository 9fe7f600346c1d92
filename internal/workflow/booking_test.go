package workflow

import (
	"testing"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

func pendingBooking() model.Booking {
	return model.Booking{ID: 1, StudentID: 10, Status: model.BookingPending}
}

func TestApproveBooking_FromPending(t *testing.T) {
	b := pendingBooking()
	if err := ApproveBooking(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != model.BookingApproved {
		t.Fatalf("expected APPROVED, got %s", b.Status)
	}
}

func TestApproveBooking_TerminalStatesRejected(t *testing.T) {
	for _, st := range []model.BookingStatus{model.BookingApproved, model.BookingRejected} {
		b := pendingBooking()
		b.Status = st
		err := ApproveBooking(&b)
		if KindOf(err) != KindInvalidTransition {
			t.Fatalf("approve from %s: expected invalid transition, got %v", st, err)
		}
		if b.Status != st {
			t.Fatalf("approve from %s must not mutate the record", st)
		}
	}
}

func TestRejectBooking_RequiresFeedback(t *testing.T) {
	b := pendingBooking()
	err := RejectBooking(&b, "   ")
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	we := err.(*Error)
	if len(we.Fields["feedback"]) == 0 {
		t.Fatalf("expected feedback field message, got %v", we.Fields)
	}
	if b.Status != model.BookingPending {
		t.Fatalf("failed reject must not mutate the record")
	}
}

func TestRejectBooking_StoresFeedback(t *testing.T) {
	b := pendingBooking()
	if err := RejectBooking(&b, "venue is reserved for commencement rites"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != model.BookingRejected {
		t.Fatalf("expected REJECTED, got %s", b.Status)
	}
	if b.Feedback == nil || *b.Feedback == "" {
		t.Fatalf("feedback not stored")
	}
}

func TestRejectBooking_FromTerminal(t *testing.T) {
	b := pendingBooking()
	b.Status = model.BookingApproved
	if err := RejectBooking(&b, "changed our minds"); KindOf(err) != KindInvalidTransition {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestCanEditBooking(t *testing.T) {
	b := pendingBooking()
	if err := CanEditBooking(b, 10); err != nil {
		t.Fatalf("owner must be able to edit a pending booking: %v", err)
	}
	if err := CanEditBooking(b, 99); KindOf(err) != KindAuthorization {
		t.Fatalf("stranger edit: expected authorization error, got %v", err)
	}
	b.Status = model.BookingApproved
	if err := CanEditBooking(b, 10); KindOf(err) != KindInvalidTransition {
		t.Fatalf("post-decision edit: expected invalid transition, got %v", err)
	}
	// Ownership outranks state: a stranger probing a decided booking
	// still sees the authorization failure.
	if err := CanEditBooking(b, 99); KindOf(err) != KindAuthorization {
		t.Fatalf("stranger edit of decided booking: expected authorization error, got %v", err)
	}
}
