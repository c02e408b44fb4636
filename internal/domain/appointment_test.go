package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_Transitions(t *testing.T) {
	assert.True(t, AppointmentStatusPending.CanTransitionTo(AppointmentStatusConfirmed))
	assert.True(t, AppointmentStatusPending.CanTransitionTo(AppointmentStatusRejected))

	// terminal states never move again
	assert.False(t, AppointmentStatusConfirmed.CanTransitionTo(AppointmentStatusRejected))
	assert.False(t, AppointmentStatusConfirmed.CanTransitionTo(AppointmentStatusPending))
	assert.False(t, AppointmentStatusRejected.CanTransitionTo(AppointmentStatusConfirmed))
	assert.False(t, AppointmentStatusPending.CanTransitionTo(AppointmentStatusPending))
}

func TestAppointmentStatus_Valid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.Valid())
	assert.True(t, AppointmentStatusConfirmed.Valid())
	assert.True(t, AppointmentStatusRejected.Valid())
	assert.False(t, AppointmentStatus("cancelled").Valid())
}
