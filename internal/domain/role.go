package domain

// Role enumerates the dashboard roles a principal may hold.
type Role string

const (
	RoleStudent   Role = "student"
	RoleCounselor Role = "counselor"
	RoleAdmin     Role = "admin"

	// RoleNone is the absence of any recognized role. A principal with
	// RoleNone as primary role has no dashboard.
	RoleNone Role = ""
)

// rolePriority orders roles for primary-role derivation, highest first.
var rolePriority = []Role{RoleAdmin, RoleCounselor, RoleStudent}

// ParseRole maps a raw label to a Role, RoleNone if unrecognized.
func ParseRole(label string) Role {
	switch Role(label) {
	case RoleStudent, RoleCounselor, RoleAdmin:
		return Role(label)
	default:
		return RoleNone
	}
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleCounselor || r == RoleAdmin
}

// PrimaryRole reduces a set of granted roles to the single role used for
// dashboard routing: admin wins over counselor wins over student. An empty
// or unrecognized set yields RoleNone. The reduction is pure and total;
// routing correctness depends on this exact priority order.
func PrimaryRole(roles []Role) Role {
	granted := make(map[Role]struct{}, len(roles))
	for _, role := range roles {
		granted[role] = struct{}{}
	}
	for _, candidate := range rolePriority {
		if _, ok := granted[candidate]; ok {
			return candidate
		}
	}
	return RoleNone
}
