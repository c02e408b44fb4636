package domain

import "time"

// User is an account that can sign in with username/password.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity derives the principal view of the account.
func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Name: u.Name, Roles: u.Roles}
}
