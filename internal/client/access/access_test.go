package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

func identityWith(roles ...domain.Role) *domain.Identity {
	return &domain.Identity{ID: "x", Name: "X", Roles: roles}
}

func TestHasAccess_NilIdentityDeniedEverywhere(t *testing.T) {
	for _, route := range []string{"/", "/login", "/student", "/counselor", "/admin", "/anything"} {
		assert.False(t, HasAccess(nil, route), "route %s", route)
	}
}

func TestHasAccess_NoRoleDeniedEverywhere(t *testing.T) {
	identity := identityWith()
	for _, route := range []string{"/", "/login", "/student", "/counselor", "/admin"} {
		assert.False(t, HasAccess(identity, route), "route %s", route)
	}
}

func TestHasAccess_RoleNamespaces(t *testing.T) {
	student := identityWith(domain.RoleStudent)
	counselor := identityWith(domain.RoleCounselor)
	admin := identityWith(domain.RoleAdmin)

	assert.True(t, HasAccess(student, "/student"))
	assert.False(t, HasAccess(student, "/counselor"))
	assert.False(t, HasAccess(student, "/admin"))

	assert.True(t, HasAccess(counselor, "/counselor"))
	assert.False(t, HasAccess(counselor, "/student"))

	assert.True(t, HasAccess(admin, "/admin"))
	assert.False(t, HasAccess(admin, "/student"))
	assert.False(t, HasAccess(admin, "/counselor"))
}

func TestHasAccess_NeutralRoutesAllowedForAnyRole(t *testing.T) {
	for _, identity := range []*domain.Identity{
		identityWith(domain.RoleStudent),
		identityWith(domain.RoleCounselor),
		identityWith(domain.RoleAdmin),
	} {
		assert.True(t, HasAccess(identity, "/"))
		assert.True(t, HasAccess(identity, "/login"))
		assert.True(t, HasAccess(identity, "/settings"))
	}
}

func TestHasAccess_PrefixCoversSubRoutes(t *testing.T) {
	student := identityWith(domain.RoleStudent)
	assert.True(t, HasAccess(student, "/student/history"))
	assert.False(t, HasAccess(student, "/admin/reports"))
}

func TestHasAccess_MultiRoleUsesPrimary(t *testing.T) {
	// admin is the primary role, so only the admin namespace opens
	both := identityWith(domain.RoleStudent, domain.RoleAdmin)
	assert.True(t, HasAccess(both, "/admin"))
	assert.False(t, HasAccess(both, "/student"))
}
