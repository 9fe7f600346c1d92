package workflow

import (
	"strings"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// concernNext lists the statuses reachable from each concern status.
// PENDING may skip ON_PROGRESS and close directly; terminal states allow
// nothing further.
var concernNext = map[model.ConcernStatus][]model.ConcernStatus{
	model.ConcernPending:    {model.ConcernOnProgress, model.ConcernResolved, model.ConcernRejected},
	model.ConcernOnProgress: {model.ConcernResolved, model.ConcernRejected},
}

// TransitionConcern moves a concern to next if the transition is legal.
// The record is mutated in place.
func TransitionConcern(cn *model.Concern, next model.ConcernStatus) error {
	if !next.Valid() {
		return Invalid("status", "unknown concern status "+string(next))
	}
	for _, allowed := range concernNext[cn.Status] {
		if next == allowed {
			cn.Status = next
			return nil
		}
	}
	return InvalidTransition("concern cannot move from " + string(cn.Status) + " to " + string(next))
}

// AttachConcernFeedback records admin feedback on a concern.  Feedback
// may be attached or replaced at any point before the concern closes;
// once terminal the record is read-only.
func AttachConcernFeedback(cn *model.Concern, feedback string) error {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return Invalid("feedback", "feedback must not be empty")
	}
	if cn.Status.Terminal() {
		return InvalidTransition("concern is closed, feedback can no longer be changed")
	}
	cn.Feedback = &feedback
	return nil
}

// CanEditConcern reports whether actorID may edit the concern's details.
// Same gating as bookings: owner only, and only while PENDING.
func CanEditConcern(cn model.Concern, actorID uint64) error {
	if cn.StudentID != actorID {
		return Unauthorized("concern belongs to another student")
	}
	if cn.Status != model.ConcernPending {
		return InvalidTransition("concern is already being processed and can no longer be edited")
	}
	return nil
}
