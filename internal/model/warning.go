package model

import "time"

// WarningStatus enumerates the states of a disciplinary warning slip.
// The canonical set is PENDING/RESOLVED/DISMISSED; slips never reuse the
// booking or concern enumerations.
type WarningStatus string

const (
	WarningPending   WarningStatus = "PENDING"
	WarningResolved  WarningStatus = "RESOLVED"
	WarningDismissed WarningStatus = "DISMISSED"
)

// Valid reports whether s is one of the known warning statuses.
func (s WarningStatus) Valid() bool {
	switch s {
	case WarningPending, WarningResolved, WarningDismissed:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transition.
func (s WarningStatus) Terminal() bool {
	return s == WarningResolved || s == WarningDismissed
}

// WarningSlip is a disciplinary notice issued by an administrator
// against a student.  The student's name and contact details are stored
// on the slip itself so the record stays legible even if the account is
// later deactivated.  A dismissal reason, when given, is stored in
// Feedback.
//
// Fields:
//  ID            – primary key identifier.
//  StudentID     – student the slip is issued against.
//  IssuedBy      – admin who created the slip.
//  StudentName   – student's full name as entered by the admin.
//  ContactNumber – student contact number (nullable).
//  Address       – student address (nullable).
//  ViolationType – category of the violation.
//  Details       – description of the violation.
//  ViolationDate – day the violation occurred.
//  Status        – PENDING, RESOLVED or DISMISSED.
//  Feedback      – resolution notes / dismissal reason (nullable).
//  CreatedAt     – issuance timestamp.
//  UpdatedAt     – last update timestamp.
type WarningSlip struct {
	ID            uint64        // warning_slips.id
	StudentID     uint64        // warning_slips.student_id
	IssuedBy      uint64        // warning_slips.issued_by
	StudentName   string        // warning_slips.student_name
	ContactNumber *string       // warning_slips.contact_number (nullable)
	Address       *string       // warning_slips.address (nullable)
	ViolationType string        // warning_slips.violation_type
	Details       string        // warning_slips.details
	ViolationDate time.Time     // warning_slips.violation_date
	Status        WarningStatus // warning_slips.status
	Feedback      *string       // warning_slips.feedback (nullable)
	CreatedAt     time.Time     // warning_slips.created_at
	UpdatedAt     time.Time     // warning_slips.updated_at
}
