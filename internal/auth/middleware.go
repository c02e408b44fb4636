package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
	apperrors "github.com/brightpath-edu/counseling-scheduler/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Identity *domain.Identity
	TokenID  string
}

// PrimaryRole is the role used for route gating.
func (p *Principal) PrimaryRole() domain.Role {
	if p == nil {
		return domain.RoleNone
	}
	return p.Identity.PrimaryRole()
}

// TokenRevoker answers whether a token id has been invalidated by logout.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Middleware validates bearer tokens and loads principals.
type Middleware struct {
	tokens  *TokenManager
	revoker TokenRevoker
}

// NewMiddleware constructs middleware. revoker may be nil when logout
// revocation is not configured.
func NewMiddleware(tokens *TokenManager, revoker TokenRevoker) *Middleware {
	return &Middleware{tokens: tokens, revoker: revoker}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	if m.revoker != nil {
		revoked, err := m.revoker.IsRevoked(c.Context(), claims.ID)
		if err == nil && revoked {
			return apperrors.NewUnauthorized("token revoked")
		}
	}

	c.Locals(principalKey, &Principal{Identity: claims.Identity(), TokenID: claims.ID})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
