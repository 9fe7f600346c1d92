package workflow

import (
	"testing"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

func TestTransitionWarning_Resolve(t *testing.T) {
	w := model.WarningSlip{Status: model.WarningPending}
	if err := TransitionWarning(&w, model.WarningResolved, ""); err != nil {
		t.Fatalf("resolve without notes should pass: %v", err)
	}
	if w.Status != model.WarningResolved {
		t.Fatalf("expected RESOLVED, got %s", w.Status)
	}
	if w.Feedback != nil {
		t.Fatalf("no notes were given, feedback should stay nil")
	}
}

func TestTransitionWarning_ResolveWithNotes(t *testing.T) {
	w := model.WarningSlip{Status: model.WarningPending}
	if err := TransitionWarning(&w, model.WarningResolved, "student completed community service"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Feedback == nil {
		t.Fatalf("resolution notes not stored")
	}
}

func TestTransitionWarning_DismissRequiresReason(t *testing.T) {
	w := model.WarningSlip{Status: model.WarningPending}
	err := TransitionWarning(&w, model.WarningDismissed, "  ")
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if w.Status != model.WarningPending {
		t.Fatalf("failed dismissal must not mutate the slip")
	}

	if err := TransitionWarning(&w, model.WarningDismissed, "mistaken identity"); err != nil {
		t.Fatalf("dismiss with reason should pass: %v", err)
	}
	if w.Status != model.WarningDismissed {
		t.Fatalf("expected DISMISSED, got %s", w.Status)
	}
	if w.Feedback == nil || *w.Feedback != "mistaken identity" {
		t.Fatalf("dismissal reason must be persisted in feedback")
	}
}

func TestTransitionWarning_TerminalAndBackwards(t *testing.T) {
	w := model.WarningSlip{Status: model.WarningResolved}
	if err := TransitionWarning(&w, model.WarningDismissed, "reason"); KindOf(err) != KindInvalidTransition {
		t.Fatalf("expected invalid transition from resolved, got %v", err)
	}
	w.Status = model.WarningPending
	if err := TransitionWarning(&w, model.WarningPending, ""); KindOf(err) != KindInvalidTransition {
		t.Fatalf("expected invalid transition back to pending, got %v", err)
	}
	if err := TransitionWarning(&w, model.WarningStatus("ESCALATED"), ""); KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}
