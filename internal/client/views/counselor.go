// Package views holds the data-facing side of the role dashboards. The
// rendering layer is out of scope; these view models own loading,
// mutation and error-to-notification behavior.
package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/brightpath-edu/counseling-scheduler/internal/client/api"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// CounselorDashboard shows a counselor their pending and confirmed
// appointments and lets them accept or reject pending ones.
type CounselorDashboard struct {
	client   api.Client
	identity *domain.Identity

	mu           sync.Mutex
	appointments []domain.Appointment
	loaded       bool

	Notifications NotificationCenter
}

// NewCounselorDashboard builds the view model for the given counselor.
func NewCounselorDashboard(client api.Client, identity *domain.Identity) *CounselorDashboard {
	return &CounselorDashboard{client: client, identity: identity}
}

// Load fetches the counselor's appointments. A transport failure becomes
// a notification; previously loaded data stays in place.
func (d *CounselorDashboard) Load(ctx context.Context) {
	appointments, err := d.client.ListAppointments(ctx, d.identity.ID, domain.RoleCounselor)
	if err != nil {
		d.Notifications.Push(NotificationError, "Failed to load appointments. Please try again.")
		return
	}
	d.mu.Lock()
	d.appointments = appointments
	d.loaded = true
	d.mu.Unlock()
}

// Loaded reports whether the first fetch has succeeded.
func (d *CounselorDashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// UpdateStatus applies a decision on one appointment. On success only the
// targeted appointment moves between the pending and confirmed/rejected
// partitions; on failure nothing changes and an error notification is
// pushed.
func (d *CounselorDashboard) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) {
	update, err := d.client.SetAppointmentStatus(ctx, id, status)
	if err != nil {
		d.Notifications.Push(NotificationError, "Failed to update appointment. Please try again.")
		return
	}

	d.mu.Lock()
	for i := range d.appointments {
		if d.appointments[i].ID == update.ID {
			d.appointments[i].Status = update.Status
		}
	}
	d.mu.Unlock()

	d.Notifications.Push(NotificationSuccess, fmt.Sprintf("Appointment %s successfully!", status))
}

// Pending returns the appointments awaiting a decision.
func (d *CounselorDashboard) Pending() []domain.Appointment {
	return d.filter(domain.AppointmentStatusPending)
}

// Confirmed returns the accepted appointments.
func (d *CounselorDashboard) Confirmed() []domain.Appointment {
	return d.filter(domain.AppointmentStatusConfirmed)
}

func (d *CounselorDashboard) filter(status domain.AppointmentStatus) []domain.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Appointment, 0, len(d.appointments))
	for _, appointment := range d.appointments {
		if appointment.Status == status {
			out = append(out, appointment)
		}
	}
	return out
}
