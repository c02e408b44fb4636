// Package access implements the dashboard's role-based route check.
//
// The check is advisory: it decides what the client renders, while the
// appointment service enforces the same role rules on its own endpoints.
package access

import (
	"strings"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// roleNamespaces maps each role-restricted route prefix to the role
// allowed under it.
var roleNamespaces = []struct {
	prefix string
	role   domain.Role
}{
	{"/student", domain.RoleStudent},
	{"/counselor", domain.RoleCounselor},
	{"/admin", domain.RoleAdmin},
}

// HasAccess reports whether the identity may see the route. Absent
// identities and identities without a recognized role are denied
// everywhere. Routes outside the three role namespaces are implicitly
// allowed. Pure; re-evaluated on every render.
func HasAccess(identity *domain.Identity, route string) bool {
	primary := identity.PrimaryRole()
	if primary == domain.RoleNone {
		return false
	}
	for _, ns := range roleNamespaces {
		if strings.HasPrefix(route, ns.prefix) && primary != ns.role {
			return false
		}
	}
	return true
}
