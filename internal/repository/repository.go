package repository

import (
	"context"
	"errors"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. Both the
// in-memory and postgres implementations normalize to it.
var ErrNotFound = errors.New("record not found")

// UserRepository encapsulates account lookup.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AppointmentRepository encapsulates appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	Update(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	// ListBySubject returns appointments visible to the subject: students
	// see their own bookings, counselors their assigned ones, admins all.
	ListBySubject(ctx context.Context, subjectID string, role domain.Role) ([]domain.Appointment, error)
	ListAll(ctx context.Context) ([]domain.Appointment, error)
}

// CounselorRepository encapsulates the bookable counselor listing.
type CounselorRepository interface {
	List(ctx context.Context) ([]domain.Counselor, error)
	GetByID(ctx context.Context, id string) (*domain.Counselor, error)
}
