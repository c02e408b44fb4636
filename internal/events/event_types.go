package events

import (
	"time"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentCreated       EventType = "appointment_created"
	EventAppointmentStatusChanged EventType = "appointment_status_changed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	AppointmentID string      `json:"appointment_id"`
	Actor         Actor       `json:"actor"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// AppointmentCreatedPayload payload.
type AppointmentCreatedPayload struct {
	StudentName   string `json:"student_name"`
	CounselorName string `json:"counselor_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Type          string `json:"type"`
}

// AppointmentStatusChangedPayload payload.
type AppointmentStatusChangedPayload struct {
	OldStatus domain.AppointmentStatus `json:"old_status"`
	NewStatus domain.AppointmentStatus `json:"new_status"`
}
