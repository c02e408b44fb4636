package dto

import (
	"time"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// LoginRequest payload for credential login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IdentityResponse wire form of an authenticated principal.
type IdentityResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	Role  string   `json:"role"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FromIdentity converts the domain principal, including the derived
// primary role the dashboards key off.
func FromIdentity(identity *domain.Identity) IdentityResponse {
	roles := make([]string, 0, len(identity.Roles))
	for _, role := range identity.Roles {
		roles = append(roles, string(role))
	}
	return IdentityResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Roles: roles,
		Role:  string(identity.PrimaryRole()),
	}
}

// ToIdentity rebuilds the domain principal from the wire form.
func (r IdentityResponse) ToIdentity() *domain.Identity {
	roles := make([]domain.Role, 0, len(r.Roles))
	for _, label := range r.Roles {
		roles = append(roles, domain.Role(label))
	}
	if len(roles) == 0 && r.Role != "" {
		// older payloads carry a single role field
		roles = append(roles, domain.Role(r.Role))
	}
	return &domain.Identity{ID: r.ID, Name: r.Name, Roles: roles}
}

// SessionInfoResponse mirrors the identity-provider session endpoint: the
// principal is null when no session exists.
type SessionInfoResponse struct {
	ClientPrincipal *IdentityResponse `json:"clientPrincipal"`
}
