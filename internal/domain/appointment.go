package domain

import "time"

// AppointmentStatus enumerates lifecycle states for appointments. Values
// are lowercase on the wire; the contract with existing clients fixes them.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed || s == AppointmentStatusRejected
}

// CanTransitionTo reports whether the status change is legal. Only
// pending→confirmed and pending→rejected exist; confirmed and rejected
// are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s != AppointmentStatusPending {
		return false
	}
	return next == AppointmentStatusConfirmed || next == AppointmentStatusRejected
}

// Appointment is a booking between a student and a counselor. Date and
// Time stay strings (YYYY-MM-DD, HH:MM) per the service contract.
type Appointment struct {
	ID            string
	StudentID     string
	CounselorID   string
	StudentName   string
	CounselorName string
	Date          string
	Time          string
	Status        AppointmentStatus
	Type          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
