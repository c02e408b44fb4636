// Package api defines the dashboard's boundary to the appointment
// service. The service is an opaque async collaborator: everything behind
// this interface may take time, fail, or be a canned stand-in.
package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// ErrInvalidCredentials is returned by Authenticate when the username is
// unknown or the password wrong. Callers surface it inline on the login
// form; it is user-correctable, not a transport failure.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TransportError wraps any data-fetch or mutation failure. Views convert
// it into a dismissible notification and keep previously loaded data.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Credentials is a username/password pair.
type Credentials struct {
	Username string
	Password string
}

// AuthResult carries the authenticated principal and its opaque token.
type AuthResult struct {
	Identity *domain.Identity
	Token    string
}

// StatusUpdate is the minimal acknowledgement of a status mutation.
type StatusUpdate struct {
	ID     string
	Status domain.AppointmentStatus
}

// BookingRequest captures a new appointment booking.
type BookingRequest struct {
	CounselorID string
	Date        string
	Time        string
	Type        string
}

// Client is the appointment service contract.
type Client interface {
	// Authenticate exchanges credentials for an identity and token.
	// Fails with ErrInvalidCredentials when rejected.
	Authenticate(ctx context.Context, creds Credentials) (*AuthResult, error)

	// AuthenticateProvider completes an external-provider login; the
	// provider asserts the principal.
	AuthenticateProvider(ctx context.Context, provider string) (*AuthResult, error)

	// SessionInfo asks the identity endpoint for the current principal.
	// A nil identity with nil error means no session exists.
	SessionInfo(ctx context.Context) (*domain.Identity, error)

	// SetAuthToken installs (or clears, with "") the token sent on
	// subsequent calls.
	SetAuthToken(token string)

	ListAppointments(ctx context.Context, subjectID string, role domain.Role) ([]domain.Appointment, error)
	ListCounselors(ctx context.Context) ([]domain.Counselor, error)
	CreateAppointment(ctx context.Context, req BookingRequest) (*domain.Appointment, error)
	SetAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*StatusUpdate, error)
	GetAnalytics(ctx context.Context) (*domain.Analytics, error)
}
