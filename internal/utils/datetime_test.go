package utils

import (
	"testing"
	"time"
)

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2025-03-10", "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := CombineDateTime("03/10/2025", "14:30"); err != ErrBadDate {
		t.Fatalf("expected ErrBadDate for wrong date layout, got %v", err)
	}
	if _, err := CombineDateTime("2025-03-10", "2pm"); err != ErrBadDate {
		t.Fatalf("expected ErrBadDate for wrong time layout, got %v", err)
	}
}

func TestParseDayRange_EndDayIncluded(t *testing.T) {
	from, toExcl, err := ParseDayRange("2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !from.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", from)
	}
	// Inclusive day range: an event late on the 31st must fall inside.
	if !toExcl.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("toExcl = %v", toExcl)
	}
	lastMoment := time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)
	if !(lastMoment.Before(toExcl) && !lastMoment.Before(from)) {
		t.Fatalf("end day not included in range")
	}
}

func TestParseDayRange_Errors(t *testing.T) {
	if _, _, err := ParseDayRange("2025-03-31", "2025-03-01"); err != ErrBadDate {
		t.Fatalf("expected ErrBadDate for inverted range, got %v", err)
	}
	if _, _, err := ParseDayRange("yesterday", "2025-03-01"); err != ErrBadDate {
		t.Fatalf("expected ErrBadDate for junk input, got %v", err)
	}
}

func TestValidateStruct_FieldErrorShape(t *testing.T) {
	type form struct {
		EventName string `json:"event_name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
	}
	fields := ValidateStruct(form{Email: "not-an-email"})
	if fields == nil {
		t.Fatalf("expected validation failures")
	}
	if len(fields["event_name"]) == 0 {
		t.Fatalf("expected event_name error keyed by json tag, got %v", fields)
	}
	if len(fields["email"]) == 0 {
		t.Fatalf("expected email error, got %v", fields)
	}
	if ok := ValidateStruct(form{EventName: "Org Fair", Email: "sc@univ.edu"}); ok != nil {
		t.Fatalf("valid struct should produce nil map, got %v", ok)
	}
}
