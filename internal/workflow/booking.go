package workflow

import (
	"strings"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// ApproveBooking moves a booking from PENDING to APPROVED.  Approval
// never requires feedback.  The record is mutated in place; persisting
// the change is the caller's job, as is the conflict re-check that runs
// inside the approval transaction.
func ApproveBooking(b *model.Booking) error {
	if b.Status != model.BookingPending {
		return InvalidTransition("booking is " + string(b.Status) + ", only pending bookings can be approved")
	}
	b.Status = model.BookingApproved
	return nil
}

// RejectBooking moves a booking from PENDING to REJECTED and attaches
// the mandatory feedback explaining the decision.
func RejectBooking(b *model.Booking, feedback string) error {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return Invalid("feedback", "feedback is required when rejecting a booking")
	}
	if b.Status != model.BookingPending {
		return InvalidTransition("booking is " + string(b.Status) + ", only pending bookings can be rejected")
	}
	b.Status = model.BookingRejected
	b.Feedback = &feedback
	return nil
}

// CanEditBooking reports whether actorID may edit the booking's details.
// Only the owning student may edit, and only while the booking is still
// PENDING.  Ownership is checked first so a stranger probing a decided
// booking sees a 403, not a hint about its state.
func CanEditBooking(b model.Booking, actorID uint64) error {
	if b.StudentID != actorID {
		return Unauthorized("booking belongs to another student")
	}
	if b.Status != model.BookingPending {
		return InvalidTransition("booking has been " + strings.ToLower(string(b.Status)) + " and can no longer be edited")
	}
	return nil
}
