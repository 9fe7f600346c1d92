package model

import "time"

// Facility represents a bookable room or venue managed by the Office of
// Student Affairs.  Facilities are reference data: they are created by
// seeding or admin setup and are never mutated by the booking flow.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – unique display name (e.g. "AVR 1", "Gymnasium").
//  Capacity  – maximum headcount (nil when unspecified).
//  Location  – building/floor description.
//  IsActive  – whether the facility may be booked.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Facility struct {
	ID        uint64     // facilities.id
	Name      string     // facilities.name
	Capacity  *uint32    // facilities.capacity (nullable)
	Location  string     // facilities.location
	IsActive  bool       // facilities.is_active
	CreatedAt time.Time  // facilities.created_at
	UpdatedAt time.Time  // facilities.updated_at
}
