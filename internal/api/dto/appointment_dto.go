package dto

import (
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// AppointmentResponse wire form of an appointment.
type AppointmentResponse struct {
	ID            string `json:"id"`
	StudentID     string `json:"studentId"`
	CounselorID   string `json:"counselorId"`
	StudentName   string `json:"studentName"`
	CounselorName string `json:"counselorName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	Type          string `json:"type"`
}

// FromAppointment converts the domain model.
func FromAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		StudentID:     a.StudentID,
		CounselorID:   a.CounselorID,
		StudentName:   a.StudentName,
		CounselorName: a.CounselorName,
		Date:          a.Date,
		Time:          a.Time,
		Status:        string(a.Status),
		Type:          a.Type,
	}
}

// ToAppointment rebuilds the domain model from the wire form.
func (r AppointmentResponse) ToAppointment() domain.Appointment {
	return domain.Appointment{
		ID:            r.ID,
		StudentID:     r.StudentID,
		CounselorID:   r.CounselorID,
		StudentName:   r.StudentName,
		CounselorName: r.CounselorName,
		Date:          r.Date,
		Time:          r.Time,
		Status:        domain.AppointmentStatus(r.Status),
		Type:          r.Type,
	}
}

// FromAppointments converts a slice keeping order.
func FromAppointments(appointments []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, FromAppointment(&appointments[i]))
	}
	return out
}

// CreateAppointmentRequest payload for bookings.
type CreateAppointmentRequest struct {
	CounselorID string `json:"counselorId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
}

// UpdateStatusRequest payload for counselor decisions.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusResponse is the minimal mutation acknowledgement.
type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CounselorResponse wire form of a counselor listing entry.
type CounselorResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Available      bool   `json:"available"`
}

// FromCounselors converts the listing.
func FromCounselors(counselors []domain.Counselor) []CounselorResponse {
	out := make([]CounselorResponse, 0, len(counselors))
	for _, c := range counselors {
		out = append(out, CounselorResponse{
			ID:             c.ID,
			Name:           c.Name,
			Specialization: c.Specialization,
			Available:      c.Available,
		})
	}
	return out
}

// CounselorLoadResponse is one workload row.
type CounselorLoadResponse struct {
	Name         string `json:"name"`
	Appointments int    `json:"appointments"`
}

// AnalyticsResponse wire form of the admin report.
type AnalyticsResponse struct {
	TotalBookings       int                     `json:"totalBookings"`
	PendingAppointments int                     `json:"pendingAppointments"`
	CounselorWorkload   []CounselorLoadResponse `json:"counselorWorkload"`
}

// FromAnalytics converts the report.
func FromAnalytics(a *domain.Analytics) AnalyticsResponse {
	workload := make([]CounselorLoadResponse, 0, len(a.CounselorWorkload))
	for _, row := range a.CounselorWorkload {
		workload = append(workload, CounselorLoadResponse{Name: row.Name, Appointments: row.Appointments})
	}
	return AnalyticsResponse{
		TotalBookings:       a.TotalBookings,
		PendingAppointments: a.PendingAppointments,
		CounselorWorkload:   workload,
	}
}
