package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// WarningRepo provides CRUD and range queries for disciplinary warning
// slips.
type WarningRepo struct{ db *sql.DB }

func NewWarningRepo(db *sql.DB) *WarningRepo { return &WarningRepo{db: db} }

const warningCols = `id, student_id, issued_by, student_name, contact_number, address,
	violation_type, details, violation_date, status, feedback, created_at, updated_at`

func scanWarning(row interface{ Scan(...any) error }) (model.WarningSlip, error) {
	var w model.WarningSlip
	var contact, address, feedback sql.NullString
	err := row.Scan(
		&w.ID, &w.StudentID, &w.IssuedBy, &w.StudentName, &contact, &address,
		&w.ViolationType, &w.Details, &w.ViolationDate, &w.Status, &feedback,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return model.WarningSlip{}, err
	}
	if contact.Valid {
		v := contact.String
		w.ContactNumber = &v
	}
	if address.Valid {
		v := address.String
		w.Address = &v
	}
	if feedback.Valid {
		v := feedback.String
		w.Feedback = &v
	}
	return w, nil
}

func collectWarnings(rows *sql.Rows) ([]model.WarningSlip, error) {
	defer rows.Close()
	out := []model.WarningSlip{}
	for rows.Next() {
		w, err := scanWarning(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Create inserts a new PENDING warning slip and reads the row back.
func (r *WarningRepo) Create(ctx context.Context, w *model.WarningSlip) error {
	const q = `INSERT INTO warning_slips
		(student_id, issued_by, student_name, contact_number, address,
		 violation_type, details, violation_date, status)
		VALUES (?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		w.StudentID, w.IssuedBy, w.StudentName, w.ContactNumber, w.Address,
		w.ViolationType, w.Details, w.ViolationDate, string(model.WarningPending))
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
	*w = got
	return nil
}

// GetByID returns one warning slip.  A miss maps to ErrWarningNotFound.
func (r *WarningRepo) GetByID(ctx context.Context, id uint64) (model.WarningSlip, error) {
	w, err := scanWarning(r.db.QueryRowContext(ctx,
		"SELECT "+warningCols+" FROM warning_slips WHERE id = ? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.WarningSlip{}, ErrWarningNotFound
	}
	return w, err
}

// ListByStudent returns the slips issued against one student, newest
// first.
func (r *WarningRepo) ListByStudent(ctx context.Context, studentID uint64) ([]model.WarningSlip, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+warningCols+" FROM warning_slips WHERE student_id = ? ORDER BY created_at DESC", studentID)
	if err != nil {
		return nil, err
	}
	return collectWarnings(rows)
}

// List returns all warning slips, optionally filtered by status, newest
// first.
func (r *WarningRepo) List(ctx context.Context, status *model.WarningStatus) ([]model.WarningSlip, error) {
	q := "SELECT " + warningCols + " FROM warning_slips"
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
	return collectWarnings(rows)
}

// UpdateStatus persists a resolution or dismissal, with its notes.
func (r *WarningRepo) UpdateStatus(ctx context.Context, id uint64, status model.WarningStatus, feedback *string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE warning_slips SET status = ?, feedback = ? WHERE id = ?",
		string(status), feedback, id)
	return err
}

// ListViolationsBetween returns slips whose violation date falls in
// [from, toExcl), oldest first.  Backs the date-range report.
func (r *WarningRepo) ListViolationsBetween(ctx context.Context, from, toExcl time.Time) ([]model.WarningSlip, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+warningCols+" FROM warning_slips WHERE violation_date >= ? AND violation_date < ? ORDER BY violation_date",
		from, toExcl)
	if err != nil {
		return nil, err
	}
	return collectWarnings(rows)
}
