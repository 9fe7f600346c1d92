package repository

import (
	"context"
	"database/sql"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// FacilityRepo reads the facility registry.  Facilities are seeded
// reference data; the portal only ever reads them.
type FacilityRepo struct{ db *sql.DB }

func NewFacilityRepo(db *sql.DB) *FacilityRepo { return &FacilityRepo{db: db} }

const facilityCols = "id, name, capacity, location, is_active, created_at, updated_at"

func scanFacility(row interface{ Scan(...any) error }) (model.Facility, error) {
	var f model.Facility
	var capacity sql.NullInt64
	err := row.Scan(&f.ID, &f.Name, &capacity, &f.Location, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return model.Facility{}, err
	}
	if capacity.Valid {
		c := uint32(capacity.Int64)
		f.Capacity = &c
	}
	return f, nil
}

// ListActive returns all bookable facilities ordered by name.
func (r *FacilityRepo) ListActive(ctx context.Context) ([]model.Facility, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+facilityCols+" FROM facilities WHERE is_active = 1 ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Facility{}
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetByID returns one active facility.  A miss maps to
// ErrFacilityNotFound.
func (r *FacilityRepo) GetByID(ctx context.Context, id uint64) (model.Facility, error) {
	f, err := scanFacility(r.db.QueryRowContext(ctx,
		"SELECT "+facilityCols+" FROM facilities WHERE id = ? AND is_active = 1 LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Facility{}, ErrFacilityNotFound
	}
	return f, err
}
