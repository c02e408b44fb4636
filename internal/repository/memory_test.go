package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()
	store, err := NewSeededMemoryStore(4) // low cost keeps the test fast
	require.NoError(t, err)
	return store
}

func TestMemoryUsers_Lookup(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	user, err := store.Users().GetByUsername(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, "3", user.ID)
	assert.Equal(t, "Admin User", user.Name)
	assert.Equal(t, domain.RoleAdmin, domain.PrimaryRole(user.Roles))

	_, err = store.Users().GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryAppointments_ListBySubject(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	all, err := store.Appointments().ListBySubject(ctx, "3", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := store.Appointments().ListBySubject(ctx, "1", domain.RoleStudent)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "John Doe", mine[0].StudentName)

	assigned, err := store.Appointments().ListBySubject(ctx, "3", domain.RoleCounselor)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, "Dr. Johnson", assigned[0].CounselorName)

	none, err := store.Appointments().ListBySubject(ctx, "1", domain.RoleNone)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryAppointments_CreateAssignsID(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	appointment := &domain.Appointment{
		StudentID: "1", CounselorID: "2",
		StudentName: "John Doe", CounselorName: "Dr. Smith",
		Date: "2025-10-01", Time: "09:00",
		Status: domain.AppointmentStatusPending, Type: "Academic Counseling",
	}
	require.NoError(t, store.Appointments().Create(ctx, appointment))
	require.NotEmpty(t, appointment.ID)

	stored, err := store.Appointments().GetByID(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusPending, stored.Status)
}

func TestMemoryAppointments_UpdateUnknownID(t *testing.T) {
	store := seededStore(t)
	err := store.Appointments().Update(context.Background(), &domain.Appointment{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCounselors_List(t *testing.T) {
	store := seededStore(t)
	counselors, err := store.Counselors().List(context.Background())
	require.NoError(t, err)
	require.Len(t, counselors, 2)
	assert.Equal(t, "Dr. Smith", counselors[0].Name)
	assert.True(t, counselors[0].Available)
}
