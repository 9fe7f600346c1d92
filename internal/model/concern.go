package model

import "time"

// ConcernStatus enumerates the states of a student-submitted incident
// report.  A concern may pass through ON_PROGRESS or jump straight from
// PENDING to one of the terminal states.
type ConcernStatus string

const (
	ConcernPending    ConcernStatus = "PENDING"
	ConcernOnProgress ConcernStatus = "ON_PROGRESS"
	ConcernResolved   ConcernStatus = "RESOLVED"
	ConcernRejected   ConcernStatus = "REJECTED"
)

// Valid reports whether s is one of the known concern statuses.
func (s ConcernStatus) Valid() bool {
	switch s {
	case ConcernPending, ConcernOnProgress, ConcernResolved, ConcernRejected:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transition.
func (s ConcernStatus) Terminal() bool {
	return s == ConcernResolved || s == ConcernRejected
}

// Concern is an incident or grievance reported by a student to the
// Office of Student Affairs.  Admins move it through the workflow and
// may attach feedback at any point before it closes.
//
// Fields:
//  ID           – primary key identifier.
//  StudentID    – reporting student.
//  Title        – short summary of the incident.
//  Details      – full narrative.
//  IncidentDate – day the incident occurred.
//  Status       – PENDING, ON_PROGRESS, RESOLVED or REJECTED.
//  Feedback     – admin feedback (nullable).
//  CreatedAt    – submission timestamp.
//  UpdatedAt    – last update timestamp.
type Concern struct {
	ID           uint64        // concerns.id
	StudentID    uint64        // concerns.student_id
	Title        string        // concerns.title
	Details      string        // concerns.details
	IncidentDate time.Time     // concerns.incident_date
	Status       ConcernStatus // concerns.status
	Feedback     *string       // concerns.feedback (nullable)
	CreatedAt    time.Time     // concerns.created_at
	UpdatedAt    time.Time     // concerns.updated_at
}
