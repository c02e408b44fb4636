package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath-edu/counseling-scheduler/internal/auth"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// MemoryStore keeps all records in process memory. It backs the service
// when no POSTGRES_DSN is configured and is seeded with the demo roster.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]*domain.User
	appointments map[string]*domain.Appointment
	counselors   []domain.Counselor
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]*domain.User),
		appointments: make(map[string]*domain.Appointment),
	}
}

// NewSeededMemoryStore returns a store populated with the demo accounts
// (password "password" for all), two appointments and two counselors.
func NewSeededMemoryStore(bcryptCost int) (*MemoryStore, error) {
	s := NewMemoryStore()

	hash, err := auth.HashPassword("password", bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	seedUsers := []*domain.User{
		{ID: "1", Username: "student1", Name: "John Doe", Roles: []domain.Role{domain.RoleStudent}},
		{ID: "2", Username: "counselor1", Name: "Dr. Smith", Roles: []domain.Role{domain.RoleCounselor}},
		{ID: "3", Username: "admin1", Name: "Admin User", Roles: []domain.Role{domain.RoleAdmin}},
	}
	for _, u := range seedUsers {
		u.PasswordHash = hash
		u.CreatedAt = now
		u.UpdatedAt = now
		s.users[u.ID] = u
	}

	s.appointments["1"] = &domain.Appointment{
		ID: "1", StudentID: "1", CounselorID: "2",
		StudentName: "John Doe", CounselorName: "Dr. Smith",
		Date: "2025-09-25", Time: "10:00",
		Status: domain.AppointmentStatusConfirmed, Type: "Academic Counseling",
		CreatedAt: now, UpdatedAt: now,
	}
	s.appointments["2"] = &domain.Appointment{
		ID: "2", StudentID: "4", CounselorID: "3",
		StudentName: "Jane Smith", CounselorName: "Dr. Johnson",
		Date: "2025-09-26", Time: "14:00",
		Status: domain.AppointmentStatusPending, Type: "Career Guidance",
		CreatedAt: now, UpdatedAt: now,
	}

	s.counselors = []domain.Counselor{
		{ID: "2", Name: "Dr. Smith", Specialization: "Academic & Career", Available: true},
		{ID: "3", Name: "Dr. Johnson", Specialization: "Personal Development", Available: true},
	}

	return s, nil
}

// Users returns the user repository view of the store.
func (s *MemoryStore) Users() UserRepository { return (*memoryUsers)(s) }

// Appointments returns the appointment repository view of the store.
func (s *MemoryStore) Appointments() AppointmentRepository { return (*memoryAppointments)(s) }

// Counselors returns the counselor repository view of the store.
func (s *MemoryStore) Counselors() CounselorRepository { return (*memoryCounselors)(s) }

type memoryUsers MemoryStore

func (r *memoryUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

type memoryAppointments MemoryStore

func (r *memoryAppointments) Create(_ context.Context, appointment *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	copied := *appointment
	r.appointments[appointment.ID] = &copied
	return nil
}

func (r *memoryAppointments) Update(_ context.Context, appointment *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[appointment.ID]; !ok {
		return ErrNotFound
	}
	appointment.UpdatedAt = time.Now()
	copied := *appointment
	r.appointments[appointment.ID] = &copied
	return nil
}

func (r *memoryAppointments) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (r *memoryAppointments) ListBySubject(ctx context.Context, subjectID string, role domain.Role) ([]domain.Appointment, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleAdmin {
		return all, nil
	}
	filtered := all[:0]
	for _, appointment := range all {
		switch role {
		case domain.RoleStudent:
			if appointment.StudentID == subjectID {
				filtered = append(filtered, appointment)
			}
		case domain.RoleCounselor:
			if appointment.CounselorID == subjectID {
				filtered = append(filtered, appointment)
			}
		}
	}
	return filtered, nil
}

func (r *memoryAppointments) ListAll(_ context.Context) ([]domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]domain.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		all = append(all, *appointment)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date < all[j].Date
		}
		if all[i].Time != all[j].Time {
			return all[i].Time < all[j].Time
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

type memoryCounselors MemoryStore

func (r *memoryCounselors) List(_ context.Context) ([]domain.Counselor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Counselor{}, r.counselors...), nil
}

func (r *memoryCounselors) GetByID(_ context.Context, id string) (*domain.Counselor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, counselor := range r.counselors {
		if counselor.ID == id {
			copied := counselor
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}
