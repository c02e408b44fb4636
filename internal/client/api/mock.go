package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

var _ Client = (*MockClient)(nil)

// MockClient is an in-process stand-in for the appointment service. It
// returns canned data after artificial delays and needs no network; tests
// and offline demos run against it.
type MockClient struct {
	mu    sync.Mutex
	token string

	// Delay is applied before every response. Zero keeps tests fast.
	Delay time.Duration

	appointments []domain.Appointment
}

type mockUser struct {
	identity domain.Identity
	password string
}

var mockUsers = map[string]mockUser{
	"student1":   {identity: domain.Identity{ID: "1", Name: "John Doe", Roles: []domain.Role{domain.RoleStudent}}, password: "password"},
	"counselor1": {identity: domain.Identity{ID: "2", Name: "Dr. Smith", Roles: []domain.Role{domain.RoleCounselor}}, password: "password"},
	"admin1":     {identity: domain.Identity{ID: "3", Name: "Admin User", Roles: []domain.Role{domain.RoleAdmin}}, password: "password"},
}

// NewMockClient builds a mock with the canned fixtures.
func NewMockClient(delay time.Duration) *MockClient {
	return &MockClient{
		Delay: delay,
		appointments: []domain.Appointment{
			{
				ID: "1", StudentID: "1", CounselorID: "2",
				StudentName: "John Doe", CounselorName: "Dr. Smith",
				Date: "2025-09-25", Time: "10:00",
				Status: domain.AppointmentStatusConfirmed, Type: "Academic Counseling",
			},
			{
				ID: "2", StudentID: "4", CounselorID: "3",
				StudentName: "Jane Smith", CounselorName: "Dr. Johnson",
				Date: "2025-09-26", Time: "14:00",
				Status: domain.AppointmentStatusPending, Type: "Career Guidance",
			},
		},
	}
}

func (m *MockClient) sleep(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(m.Delay):
		return nil
	case <-ctx.Done():
		return &TransportError{Op: "mock", Err: ctx.Err()}
	}
}

// Authenticate checks against the canned user table.
func (m *MockClient) Authenticate(ctx context.Context, creds Credentials) (*AuthResult, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	user, ok := mockUsers[creds.Username]
	if !ok || creds.Password != user.password {
		return nil, ErrInvalidCredentials
	}
	identity := user.identity
	return &AuthResult{Identity: &identity, Token: "mock-token-" + creds.Username}, nil
}

// providerPrincipal is the identity the canned provider asserts; the
// session endpoint reports the same principal once a token is installed.
func providerPrincipal() *domain.Identity {
	return &domain.Identity{ID: "220701230", Name: "AAD Admin User", Roles: []domain.Role{domain.RoleAdmin}}
}

// AuthenticateProvider asserts the canned provider principal.
func (m *MockClient) AuthenticateProvider(ctx context.Context, provider string) (*AuthResult, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	identity := providerPrincipal()
	return &AuthResult{Identity: identity, Token: "mock-" + provider + "-token-" + identity.ID}, nil
}

// SessionInfo reports no session unless a token has been installed.
func (m *MockClient) SessionInfo(ctx context.Context) (*domain.Identity, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return nil, nil
	}
	return providerPrincipal(), nil
}

// SetAuthToken installs the mock token.
func (m *MockClient) SetAuthToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// ListAppointments returns the canned bookings.
func (m *MockClient) ListAppointments(ctx context.Context, _ string, _ domain.Role) ([]domain.Appointment, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Appointment{}, m.appointments...), nil
}

// ListCounselors returns the canned roster.
func (m *MockClient) ListCounselors(ctx context.Context) ([]domain.Counselor, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	return []domain.Counselor{
		{ID: "2", Name: "Dr. Smith", Specialization: "Academic & Career", Available: true},
		{ID: "3", Name: "Dr. Johnson", Specialization: "Personal Development", Available: true},
	}, nil
}

// CreateAppointment books against the canned roster; new bookings start
// pending.
func (m *MockClient) CreateAppointment(ctx context.Context, req BookingRequest) (*domain.Appointment, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	counselorName := "Dr. Johnson"
	if req.CounselorID == "2" {
		counselorName = "Dr. Smith"
	}
	appointment := domain.Appointment{
		ID:            uuid.NewString(),
		CounselorID:   req.CounselorID,
		CounselorName: counselorName,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.AppointmentStatusPending,
		Type:          req.Type,
	}
	m.mu.Lock()
	m.appointments = append(m.appointments, appointment)
	m.mu.Unlock()
	return &appointment, nil
}

// SetAppointmentStatus acknowledges the mutation.
func (m *MockClient) SetAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*StatusUpdate, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments[i].Status = status
		}
	}
	m.mu.Unlock()
	return &StatusUpdate{ID: id, Status: status}, nil
}

// GetAnalytics returns the canned report.
func (m *MockClient) GetAnalytics(ctx context.Context) (*domain.Analytics, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	return &domain.Analytics{
		TotalBookings:       156,
		PendingAppointments: 23,
		CounselorWorkload: []domain.CounselorLoad{
			{Name: "Dr. Smith", Appointments: 45},
			{Name: "Dr. Johnson", Appointments: 38},
		},
	}, nil
}
