// Package workflow holds the status state machines for bookings,
// concerns and warning slips.  Every operation returns a kind-typed
// *Error instead of panicking or throwing, so handlers can map each
// failure to the right HTTP response: validation problems to 422 with a
// field map, missing records to 404, bad transitions and booking
// conflicts to 409, ownership violations to 403 and store failures to a
// generic 500.
package workflow

import "fmt"

// Kind classifies a workflow failure.
type Kind int

const (
	// KindValidation marks malformed or missing input; Fields carries
	// per-field messages for the client to correct.
	KindValidation Kind = iota + 1
	// KindNotFound marks a referenced record that does not exist.
	KindNotFound
	// KindInvalidTransition marks a status change attempted from a state
	// that does not allow it.
	KindInvalidTransition
	// KindAuthorization marks an actor acting on a record they do not own
	// or with a role that may not perform the operation.
	KindAuthorization
	// KindConflict marks a booking window that collides with an already
	// approved booking.
	KindConflict
	// KindStore marks an underlying persistence failure; the cause is
	// logged server-side and never shown to the client.
	KindStore
)

// Error is the discriminated failure value returned by workflow
// operations.  Fields is only populated for KindValidation.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string][]string
}

func (e *Error) Error() string { return e.Msg }

// KindOf returns the kind of a workflow error, or 0 for nil and
// non-workflow errors.
func KindOf(err error) Kind {
	if we, ok := err.(*Error); ok {
		return we.Kind
	}
	return 0
}

// Invalid builds a single-field validation error.
func Invalid(field, msg string) *Error {
	return &Error{
		Kind:   KindValidation,
		Msg:    fmt.Sprintf("%s: %s", field, msg),
		Fields: map[string][]string{field: {msg}},
	}
}

// InvalidFields builds a validation error from an already assembled
// field map, as produced by the request validator.
func InvalidFields(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Msg: "validation failed", Fields: fields}
}

// NotFound builds a missing-record error.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }

// InvalidTransition builds a bad-transition error.
func InvalidTransition(msg string) *Error {
	return &Error{Kind: KindInvalidTransition, Msg: msg}
}

// Unauthorized builds an ownership/role error.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindAuthorization, Msg: msg}
}

// Conflict builds a booking-window conflict error.
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }

// Store wraps a persistence failure.  The underlying error text is kept
// for logging but callers must not forward it to clients.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Msg: fmt.Sprintf("store: %v", err)}
}
