// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingDecidedEvent is published when an admin approves or rejects a
// facility booking.  It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type BookingDecidedEvent struct {
	BookingID    uint64 `json:"booking_id"`
	StudentID    uint64 `json:"student_id"`
	FacilityID   uint64 `json:"facility_id"`
	FacilityName string `json:"facility_name"`
	EventName    string `json:"event_name"`
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	Status       string `json:"status"`
	Feedback     string `json:"feedback,omitempty"`
	DecidedAt    string `json:"decided_at"`
}
