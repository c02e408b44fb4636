package domain

// Identity is an authenticated principal. Roles may carry more than one
// label when the identity provider grants several; PrimaryRole reduces
// them deterministically.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Roles []Role `json:"roles"`
}

// PrimaryRole returns the single role used for dashboard routing.
func (i *Identity) PrimaryRole() Role {
	if i == nil {
		return RoleNone
	}
	return PrimaryRole(i.Roles)
}
