package workflow

import (
	"testing"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

func TestTransitionConcern_AllowedPaths(t *testing.T) {
	cases := []struct {
		from, to model.ConcernStatus
	}{
		{model.ConcernPending, model.ConcernOnProgress},
		{model.ConcernPending, model.ConcernResolved},
		{model.ConcernPending, model.ConcernRejected},
		{model.ConcernOnProgress, model.ConcernResolved},
		{model.ConcernOnProgress, model.ConcernRejected},
	}
	for _, tc := range cases {
		cn := model.Concern{Status: tc.from}
		if err := TransitionConcern(&cn, tc.to); err != nil {
			t.Fatalf("%s -> %s should be allowed: %v", tc.from, tc.to, err)
		}
		if cn.Status != tc.to {
			t.Fatalf("%s -> %s: status not applied", tc.from, tc.to)
		}
	}
}

func TestTransitionConcern_BlockedPaths(t *testing.T) {
	cases := []struct {
		from, to model.ConcernStatus
	}{
		{model.ConcernResolved, model.ConcernPending},
		{model.ConcernResolved, model.ConcernOnProgress},
		{model.ConcernRejected, model.ConcernResolved},
		{model.ConcernOnProgress, model.ConcernPending},
		{model.ConcernPending, model.ConcernPending},
	}
	for _, tc := range cases {
		cn := model.Concern{Status: tc.from}
		err := TransitionConcern(&cn, tc.to)
		if KindOf(err) != KindInvalidTransition {
			t.Fatalf("%s -> %s: expected invalid transition, got %v", tc.from, tc.to, err)
		}
		if cn.Status != tc.from {
			t.Fatalf("%s -> %s: blocked transition must not mutate", tc.from, tc.to)
		}
	}
}

func TestTransitionConcern_UnknownStatus(t *testing.T) {
	cn := model.Concern{Status: model.ConcernPending}
	if err := TransitionConcern(&cn, model.ConcernStatus("ESCALATED")); KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestAttachConcernFeedback(t *testing.T) {
	cn := model.Concern{Status: model.ConcernOnProgress}
	if err := AttachConcernFeedback(&cn, "met with the student on Monday"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cn.Feedback == nil {
		t.Fatalf("feedback not attached")
	}

	cn.Status = model.ConcernResolved
	if err := AttachConcernFeedback(&cn, "late note"); KindOf(err) != KindInvalidTransition {
		t.Fatalf("expected invalid transition on closed concern, got %v", err)
	}

	cn.Status = model.ConcernPending
	if err := AttachConcernFeedback(&cn, ""); KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for empty feedback, got %v", err)
	}
}

func TestCanEditConcern(t *testing.T) {
	cn := model.Concern{StudentID: 5, Status: model.ConcernPending}
	if err := CanEditConcern(cn, 5); err != nil {
		t.Fatalf("owner edit of pending concern should pass: %v", err)
	}
	if err := CanEditConcern(cn, 6); KindOf(err) != KindAuthorization {
		t.Fatalf("expected authorization error, got %v", err)
	}
	cn.Status = model.ConcernOnProgress
	if err := CanEditConcern(cn, 5); KindOf(err) != KindInvalidTransition {
		t.Fatalf("expected invalid transition once processing started, got %v", err)
	}
}
