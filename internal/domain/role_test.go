package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryRole_AdminWinsRegardlessOfOrder(t *testing.T) {
	sets := [][]Role{
		{RoleAdmin},
		{RoleAdmin, RoleCounselor, RoleStudent},
		{RoleStudent, RoleAdmin},
		{RoleCounselor, RoleStudent, RoleAdmin},
	}
	for _, roles := range sets {
		assert.Equal(t, RoleAdmin, PrimaryRole(roles), "roles %v", roles)
	}
}

func TestPrimaryRole_CounselorBeatsStudent(t *testing.T) {
	assert.Equal(t, RoleCounselor, PrimaryRole([]Role{RoleStudent, RoleCounselor}))
	assert.Equal(t, RoleCounselor, PrimaryRole([]Role{RoleCounselor}))
}

func TestPrimaryRole_EmptyOrUnknownYieldsNone(t *testing.T) {
	assert.Equal(t, RoleNone, PrimaryRole(nil))
	assert.Equal(t, RoleNone, PrimaryRole([]Role{}))
	assert.Equal(t, RoleNone, PrimaryRole([]Role{Role("staff"), Role("anonymous")}))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleStudent, ParseRole("student"))
	assert.Equal(t, RoleCounselor, ParseRole("counselor"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleNone, ParseRole("superuser"))
	assert.Equal(t, RoleNone, ParseRole(""))
}

func TestIdentityPrimaryRole_NilIdentity(t *testing.T) {
	var id *Identity
	assert.Equal(t, RoleNone, id.PrimaryRole())
}
