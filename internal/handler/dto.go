package handler

import (
	"time"

	"github.com/campusdev/student-affairs-portal/internal/model"
)

// Response shapes returned to the frontend.  Models carry no JSON tags;
// each handler-facing type mirrors exactly the fields the pages render.

type facilityResp struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Capacity *uint32 `json:"capacity,omitempty"`
	Location string  `json:"location"`
}

func toFacilityResp(f model.Facility) facilityResp {
	return facilityResp{ID: f.ID, Name: f.Name, Capacity: f.Capacity, Location: f.Location}
}

type bookingResp struct {
	ID            uint64    `json:"id"`
	StudentID     uint64    `json:"student_id"`
	FacilityID    uint64    `json:"facility_id"`
	FacilityName  string    `json:"facility_name"`
	EventName     string    `json:"event_name"`
	Purpose       string    `json:"purpose"`
	Organization  string    `json:"organization"`
	ContactNumber string    `json:"contact_number"`
	EstAttendance *uint32   `json:"est_attendance,omitempty"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	Status        string    `json:"status"`
	Feedback      *string   `json:"feedback,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

func toBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:            b.ID,
		StudentID:     b.StudentID,
		FacilityID:    b.FacilityID,
		FacilityName:  b.FacilityName,
		EventName:     b.EventName,
		Purpose:       b.Purpose,
		Organization:  b.Organization,
		ContactNumber: b.ContactNumber,
		EstAttendance: b.EstAttendance,
		StartsAt:      b.StartsAt,
		EndsAt:        b.EndsAt,
		Status:        string(b.Status),
		Feedback:      b.Feedback,
		SubmittedAt:   b.CreatedAt,
	}
}

func toBookingResps(bs []model.Booking) []bookingResp {
	out := make([]bookingResp, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingResp(b))
	}
	return out
}

type concernResp struct {
	ID           uint64    `json:"id"`
	StudentID    uint64    `json:"student_id"`
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	IncidentDate time.Time `json:"incident_date"`
	Status       string    `json:"status"`
	Feedback     *string   `json:"feedback,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func toConcernResp(cn model.Concern) concernResp {
	return concernResp{
		ID:           cn.ID,
		StudentID:    cn.StudentID,
		Title:        cn.Title,
		Details:      cn.Details,
		IncidentDate: cn.IncidentDate,
		Status:       string(cn.Status),
		Feedback:     cn.Feedback,
		SubmittedAt:  cn.CreatedAt,
	}
}

func toConcernResps(cns []model.Concern) []concernResp {
	out := make([]concernResp, 0, len(cns))
	for _, cn := range cns {
		out = append(out, toConcernResp(cn))
	}
	return out
}

type warningResp struct {
	ID            uint64    `json:"id"`
	StudentID     uint64    `json:"student_id"`
	IssuedBy      uint64    `json:"issued_by"`
	StudentName   string    `json:"student_name"`
	ContactNumber *string   `json:"contact_number,omitempty"`
	Address       *string   `json:"address,omitempty"`
	ViolationType string    `json:"violation_type"`
	Details       string    `json:"details"`
	ViolationDate time.Time `json:"violation_date"`
	Status        string    `json:"status"`
	Feedback      *string   `json:"feedback,omitempty"`
	IssuedAt      time.Time `json:"issued_at"`
}

func toWarningResp(w model.WarningSlip) warningResp {
	return warningResp{
		ID:            w.ID,
		StudentID:     w.StudentID,
		IssuedBy:      w.IssuedBy,
		StudentName:   w.StudentName,
		ContactNumber: w.ContactNumber,
		Address:       w.Address,
		ViolationType: w.ViolationType,
		Details:       w.Details,
		ViolationDate: w.ViolationDate,
		Status:        string(w.Status),
		Feedback:      w.Feedback,
		IssuedAt:      w.CreatedAt,
	}
}

func toWarningResps(ws []model.WarningSlip) []warningResp {
	out := make([]warningResp, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWarningResp(w))
	}
	return out
}
