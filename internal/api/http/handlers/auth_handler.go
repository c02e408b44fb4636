package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-edu/counseling-scheduler/internal/api/dto"
	"github.com/brightpath-edu/counseling-scheduler/internal/auth"
	"github.com/brightpath-edu/counseling-scheduler/internal/service"
)

// AuthHandler exposes credential login plus the provider-style session
// endpoints the dashboard's provider strategy talks to.
type AuthHandler struct {
	auth   *service.AuthService
	tokens *auth.TokenManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService, tokens: authService.TokenManager()}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	identity, token, exp, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.FromIdentity(identity),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// SessionInfo handles GET /.auth/me. A missing or invalid token is not an
// error: it means no session, and the principal comes back null.
func (h *AuthHandler) SessionInfo(c *fiber.Ctx) error {
	response := dto.SessionInfoResponse{}
	if claims, ok := h.bearerClaims(c); ok {
		principal := dto.FromIdentity(claims.Identity())
		response.ClientPrincipal = &principal
	}
	return c.JSON(response)
}

// ProviderLogin handles GET /.auth/login/:provider. In the deployed
// original this is a full-page redirect into the provider; here the mock
// provider asserts its principal immediately.
func (h *AuthHandler) ProviderLogin(c *fiber.Ctx) error {
	identity, token, exp, err := h.auth.ProviderLogin(c.Context(), c.Params("provider"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.FromIdentity(identity),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// ProviderLogout handles GET /.auth/logout, revoking the presented token.
func (h *AuthHandler) ProviderLogout(c *fiber.Ctx) error {
	if claims, ok := h.bearerClaims(c); ok {
		if err := h.auth.Logout(c.Context(), claims.ID); err != nil {
			return err
		}
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "signed_out"}})
}

func (h *AuthHandler) bearerClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}
	claims, err := h.tokens.ParseToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
