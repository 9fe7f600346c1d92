package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// BookingRepo provides CRUD and range queries for facility bookings.
// All timestamp columns are stored in UTC.
type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// that span the availability re-check and the status update.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingCols = `id, student_id, facility_id, facility_name, event_name, purpose,
	organization, contact_number, est_attendance, starts_at, ends_at, status,
	feedback, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (model.Booking, error) {
	var b model.Booking
	var est sql.NullInt64
	var feedback sql.NullString
	err := row.Scan(
		&b.ID, &b.StudentID, &b.FacilityID, &b.FacilityName, &b.EventName, &b.Purpose,
		&b.Organization, &b.ContactNumber, &est, &b.StartsAt, &b.EndsAt, &b.Status,
		&feedback, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return model.Booking{}, err
	}
	if est.Valid {
		n := uint32(est.Int64)
		b.EstAttendance = &n
	}
	if feedback.Valid {
		f := feedback.String
		b.Feedback = &f
	}
	return b, nil
}

func collectBookings(rows *sql.Rows) ([]model.Booking, error) {
	defer rows.Close()
	out := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create inserts a new PENDING booking and reads the row back so the
// caller sees generated timestamps.  The facility name snapshot must
// already be set on the record.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
		(student_id, facility_id, facility_name, event_name, purpose, organization,
		 contact_number, est_attendance, starts_at, ends_at, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`
	var est any
	if b.EstAttendance != nil {
		est = *b.EstAttendance
	}
	res, err := r.db.ExecContext(ctx, q,
		b.StudentID, b.FacilityID, b.FacilityName, b.EventName, b.Purpose, b.Organization,
		b.ContactNumber, est, b.StartsAt, b.EndsAt, string(model.BookingPending))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*b = got
	return nil
}

// GetByID returns one booking.  A miss maps to ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id = ? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// ListByStudent returns a student's own bookings, newest first.
func (r *BookingRepo) ListByStudent(ctx context.Context, studentID uint64) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE student_id = ? ORDER BY created_at DESC", studentID)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// List returns all bookings, optionally filtered by status, newest
// first.  Used by the admin review queue.
func (r *BookingRepo) List(ctx context.Context, status *model.BookingStatus) ([]model.Booking, error) {
	q := "SELECT " + bookingCols + " FROM bookings"
	args := []any{}
	if status != nil {
		q += " WHERE status = ?"
		args = append(args, string(*status))
	}
	q += " ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListApprovedForFacility returns the approved bookings the availability
// engine must check a request against.
func (r *BookingRepo) ListApprovedForFacility(ctx context.Context, facilityID uint64) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE facility_id = ? AND status = ? ORDER BY starts_at",
		facilityID, string(model.BookingApproved))
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListApprovedForFacilityTx is the locking variant used inside the
// approval transaction: FOR UPDATE serializes concurrent approvals on
// the same facility so two conflicting bookings cannot both pass the
// re-check.
func (r *BookingRepo) ListApprovedForFacilityTx(ctx context.Context, tx *sql.Tx, facilityID uint64) ([]model.Booking, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE facility_id = ? AND status = ? ORDER BY starts_at FOR UPDATE",
		facilityID, string(model.BookingApproved))
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ApprovedByFacility loads every approved booking grouped by facility,
// for the all-facilities availability check.
func (r *BookingRepo) ApprovedByFacility(ctx context.Context) (map[uint64][]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE status = ? ORDER BY facility_id, starts_at",
		string(model.BookingApproved))
	if err != nil {
		return nil, err
	}
	all, err := collectBookings(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[uint64][]model.Booking)
	for _, b := range all {
		out[b.FacilityID] = append(out[b.FacilityID], b)
	}
	return out, nil
}

// UpdateDetails rewrites the editable fields of a pending booking.  The
// workflow layer has already verified ownership and status.
func (r *BookingRepo) UpdateDetails(ctx context.Context, b *model.Booking) error {
	const q = `UPDATE bookings SET
		facility_id = ?, facility_name = ?, event_name = ?, purpose = ?,
		organization = ?, contact_number = ?, est_attendance = ?, starts_at = ?, ends_at = ?
		WHERE id = ?`
	var est any
	if b.EstAttendance != nil {
		est = *b.EstAttendance
	}
	_, err := r.db.ExecContext(ctx, q,
		b.FacilityID, b.FacilityName, b.EventName, b.Purpose,
		b.Organization, b.ContactNumber, est, b.StartsAt, b.EndsAt, b.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = got
	return nil
}

// UpdateStatusTx persists a decided status (and optional feedback)
// inside the caller's transaction.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status model.BookingStatus, feedback *string) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE bookings SET status = ?, feedback = ? WHERE id = ?",
		string(status), feedback, id)
	return err
}

// ListStartingBetween returns bookings whose event start falls in
// [from, toExcl), oldest first.  Backs the date-range report.
func (r *BookingRepo) ListStartingBetween(ctx context.Context, from, toExcl time.Time) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE starts_at >= ? AND starts_at < ? ORDER BY starts_at",
		from, toExcl)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}
