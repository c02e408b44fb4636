package views

import (
	"context"
	"sync"

	"github.com/brightpath-edu/counseling-scheduler/internal/client/api"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// StudentDashboard shows a student their bookings and the counselor
// roster, and lets them book a new appointment.
type StudentDashboard struct {
	client   api.Client
	identity *domain.Identity

	mu           sync.Mutex
	appointments []domain.Appointment
	counselors   []domain.Counselor
	loaded       bool

	Notifications NotificationCenter
}

// NewStudentDashboard builds the view model for the given student.
func NewStudentDashboard(client api.Client, identity *domain.Identity) *StudentDashboard {
	return &StudentDashboard{client: client, identity: identity}
}

// Load fetches appointments and counselors. Each list fails
// independently; a failure affects only the list being fetched.
func (d *StudentDashboard) Load(ctx context.Context) {
	appointments, err := d.client.ListAppointments(ctx, d.identity.ID, domain.RoleStudent)
	if err != nil {
		d.Notifications.Push(NotificationError, "Failed to load appointments. Please try again.")
	} else {
		d.mu.Lock()
		d.appointments = appointments
		d.loaded = true
		d.mu.Unlock()
	}

	counselors, err := d.client.ListCounselors(ctx)
	if err != nil {
		d.Notifications.Push(NotificationError, "Failed to load counselors. Please try again.")
		return
	}
	d.mu.Lock()
	d.counselors = counselors
	d.mu.Unlock()
}

// Book creates a new appointment. The created booking is appended
// locally so the list reflects it without a refetch.
func (d *StudentDashboard) Book(ctx context.Context, req api.BookingRequest) {
	appointment, err := d.client.CreateAppointment(ctx, req)
	if err != nil {
		d.Notifications.Push(NotificationError, "Failed to book appointment. Please try again.")
		return
	}

	d.mu.Lock()
	d.appointments = append(d.appointments, *appointment)
	d.mu.Unlock()

	d.Notifications.Push(NotificationSuccess, "Appointment booked successfully!")
}

// Appointments returns the student's bookings.
func (d *StudentDashboard) Appointments() []domain.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Appointment{}, d.appointments...)
}

// Counselors returns the bookable roster.
func (d *StudentDashboard) Counselors() []domain.Counselor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Counselor{}, d.counselors...)
}

// Loaded reports whether the first appointment fetch has succeeded.
func (d *StudentDashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}
