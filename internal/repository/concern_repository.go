package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// ConcernRepo provides CRUD and range queries for incident reports.
type ConcernRepo struct{ db *sql.DB }

func NewConcernRepo(db *sql.DB) *ConcernRepo { return &ConcernRepo{db: db} }

const concernCols = `id, student_id, title, details, incident_date, status, feedback,
	created_at, updated_at`

func scanConcern(row interface{ Scan(...any) error }) (model.Concern, error) {
	var cn model.Concern
	var feedback sql.NullString
	err := row.Scan(
		&cn.ID, &cn.StudentID, &cn.Title, &cn.Details, &cn.IncidentDate, &cn.Status,
		&feedback, &cn.CreatedAt, &cn.UpdatedAt,
	)
	if err != nil {
		return model.Concern{}, err
	}
	if feedback.Valid {
		f := feedback.String
		cn.Feedback = &f
	}
	return cn, nil
}

func collectConcerns(rows *sql.Rows) ([]model.Concern, error) {
	defer rows.Close()
	out := []model.Concern{}
	for rows.Next() {
		cn, err := scanConcern(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cn)
	}
	return out, rows.Err()
}

// Create inserts a new PENDING concern and reads the row back.
func (r *ConcernRepo) Create(ctx context.Context, cn *model.Concern) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO concerns (student_id, title, details, incident_date, status) VALUES (?,?,?,?,?)",
		cn.StudentID, cn.Title, cn.Details, cn.IncidentDate, string(model.ConcernPending))
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
	*cn = got
	return nil
}

// GetByID returns one concern.  A miss maps to ErrConcernNotFound.
func (r *ConcernRepo) GetByID(ctx context.Context, id uint64) (model.Concern, error) {
	cn, err := scanConcern(r.db.QueryRowContext(ctx,
		"SELECT "+concernCols+" FROM concerns WHERE id = ? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Concern{}, ErrConcernNotFound
	}
	return cn, err
}

// ListByStudent returns a student's own concerns, newest first.
func (r *ConcernRepo) ListByStudent(ctx context.Context, studentID uint64) ([]model.Concern, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+concernCols+" FROM concerns WHERE student_id = ? ORDER BY created_at DESC", studentID)
	if err != nil {
		return nil, err
	}
	return collectConcerns(rows)
}

// List returns all concerns, optionally filtered by status, newest
// first.
func (r *ConcernRepo) List(ctx context.Context, status *model.ConcernStatus) ([]model.Concern, error) {
	q := "SELECT " + concernCols + " FROM concerns"
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
	return collectConcerns(rows)
}

// UpdateDetails rewrites the editable fields of a pending concern.
func (r *ConcernRepo) UpdateDetails(ctx context.Context, cn *model.Concern) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE concerns SET title = ?, details = ?, incident_date = ? WHERE id = ?",
		cn.Title, cn.Details, cn.IncidentDate, cn.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, cn.ID)
	if err != nil {
		return err
	}
	*cn = got
	return nil
}

// UpdateStatus persists a status change.
func (r *ConcernRepo) UpdateStatus(ctx context.Context, id uint64, status model.ConcernStatus) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE concerns SET status = ? WHERE id = ?", string(status), id)
	return err
}

// UpdateFeedback persists admin feedback independently of status.
func (r *ConcernRepo) UpdateFeedback(ctx context.Context, id uint64, feedback string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE concerns SET feedback = ? WHERE id = ?", feedback, id)
	return err
}

// ListIncidentsBetween returns concerns whose incident date falls in
// [from, toExcl), oldest first.  Backs the date-range report.
func (r *ConcernRepo) ListIncidentsBetween(ctx context.Context, from, toExcl time.Time) ([]model.Concern, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+concernCols+" FROM concerns WHERE incident_date >= ? AND incident_date < ? ORDER BY incident_date",
		from, toExcl)
	if err != nil {
		return nil, err
	}
	return collectConcerns(rows)
}
