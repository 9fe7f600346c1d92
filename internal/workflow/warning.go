package workflow

import (
	"strings"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// TransitionWarning moves a warning slip from PENDING to RESOLVED or
// DISMISSED.  Dismissal requires a reason, which is stored in the slip's
// feedback field; resolution notes are optional.
func TransitionWarning(w *model.WarningSlip, next model.WarningStatus, notes string) error {
	if !next.Valid() {
		return Invalid("status", "unknown warning status "+string(next))
	}
	if next == model.WarningPending {
		return InvalidTransition("a warning slip cannot be moved back to pending")
	}
	notes = strings.TrimSpace(notes)
	if next == model.WarningDismissed && notes == "" {
		return Invalid("feedback", "a reason is required when dismissing a warning slip")
	}
	if w.Status != model.WarningPending {
		return InvalidTransition("warning slip is " + string(w.Status) + ", only pending slips can be resolved or dismissed")
	}
	w.Status = next
	if notes != "" {
		w.Feedback = &notes
	}
	return nil
}
