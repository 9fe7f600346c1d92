package model

import "time"

// BookingStatus enumerates the states a facility-booking request moves
// through.  The set is closed: bookings never share status values with
// concerns or warning slips, which carry their own enumerations.
type BookingStatus string

const (
	BookingPending  BookingStatus = "PENDING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transition.
func (s BookingStatus) Terminal() bool {
	return s == BookingApproved || s == BookingRejected
}

// Booking records a student's request to reserve a facility for a
// half-open time window [StartsAt, EndsAt).  The facility name is
// snapshotted at submission time so historical bookings keep their
// display name even if the facility is later renamed or retired.
//
// Fields:
//  ID            – primary key identifier.
//  StudentID     – user who submitted the request.
//  FacilityID    – facility being reserved.
//  FacilityName  – facility name as of submission (snapshot, not a join).
//  EventName     – title of the event.
//  Purpose       – what the event is for.
//  Organization  – requesting department or student organization.
//  ContactNumber – requester's contact number.
//  EstAttendance – estimated headcount (nil when unspecified).
//  StartsAt      – window start (inclusive).
//  EndsAt        – window end (exclusive; must be after StartsAt).
//  Status        – PENDING, APPROVED or REJECTED.
//  Feedback      – admin feedback, required on rejection.
//  CreatedAt     – submission timestamp.
//  UpdatedAt     – last update timestamp.
type Booking struct {
	ID            uint64        // bookings.id
	StudentID     uint64        // bookings.student_id
	FacilityID    uint64        // bookings.facility_id
	FacilityName  string        // bookings.facility_name
	EventName     string        // bookings.event_name
	Purpose       string        // bookings.purpose
	Organization  string        // bookings.organization
	ContactNumber string        // bookings.contact_number
	EstAttendance *uint32       // bookings.est_attendance (nullable)
	StartsAt      time.Time     // bookings.starts_at
	EndsAt        time.Time     // bookings.ends_at
	Status        BookingStatus // bookings.status
	Feedback      *string       // bookings.feedback (nullable)
	CreatedAt     time.Time     // bookings.created_at
	UpdatedAt     time.Time     // bookings.updated_at
}
