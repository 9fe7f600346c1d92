// Package repository implements the record store over MySQL.  Each
// repository owns the SQL for one table and maps sql.ErrNoRows to a
// sentinel error so handlers can translate misses into 404 responses
// without string-matching driver errors.
package repository

import "errors"

// ErrFacilityNotFound is returned when a referenced facility does not
// exist or is inactive.
var ErrFacilityNotFound = errors.New("facility not found")

// ErrBookingNotFound is returned when a booking lookup matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrConcernNotFound is returned when a concern lookup matches no row.
var ErrConcernNotFound = errors.New("concern not found")

// ErrWarningNotFound is returned when a warning slip lookup matches no
// row.
var ErrWarningNotFound = errors.New("warning slip not found")

// ErrEmailExists is returned when registering with an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")
