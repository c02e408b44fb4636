package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/brightpath-edu/counseling-scheduler/internal/api/http/handlers"
	"github.com/brightpath-edu/counseling-scheduler/internal/auth"
	"github.com/brightpath-edu/counseling-scheduler/internal/config"
	"github.com/brightpath-edu/counseling-scheduler/internal/events"
	"github.com/brightpath-edu/counseling-scheduler/internal/observability"
	"github.com/brightpath-edu/counseling-scheduler/internal/repository"
	"github.com/brightpath-edu/counseling-scheduler/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := repository.NewSeededMemoryStore(bcrypt.MinCost)
	require.NoError(t, err)

	logger := zap.NewNop()
	authService := service.NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		ProviderName:          "aad",
	}, store.Users(), nil, logger)

	dispatcher := events.NewInMemoryDispatcher()
	appointmentService := service.NewAppointmentService(store.Appointments(), store.Counselors(), dispatcher, logger)
	analyticsService := service.NewAnalyticsService(store.Appointments())

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Appointments:   handlers.NewAppointmentsHandler(appointmentService),
		Counselors:     handlers.NewCounselorsHandler(store.Counselors()),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager(), nil),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	return data["auth"].(map[string]any)["token"].(string)
}

func TestLogin_Success(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "admin1", "password": "password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "3", user["id"])
	assert.Equal(t, "Admin User", user["name"])
	assert.Equal(t, "admin", user["role"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := newTestApp(t)

	for _, creds := range []fiber.Map{
		{"username": "admin1", "password": "nope"},
		{"username": "nobody", "password": "password"},
	} {
		resp, body := doJSON(t, app, http.MethodPost, "/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "INVALID_CREDENTIALS", errObj["code"])
	}
}

func TestLogin_MissingFields(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{"username": "admin1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", body["error"].(map[string]any)["code"])
}

func TestSessionInfo_NullPrincipalWithoutToken(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/.auth/me", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	principal, present := body["clientPrincipal"]
	assert.True(t, present)
	assert.Nil(t, principal)

	// A garbage token also resolves to "no session" rather than an error.
	resp, body = doJSON(t, app, http.MethodGet, "/.auth/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, body["clientPrincipal"])
}

func TestSessionInfo_ReturnsPrincipal(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "counselor1", "password")

	resp, body := doJSON(t, app, http.MethodGet, "/.auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	principal := body["clientPrincipal"].(map[string]any)
	assert.Equal(t, "2", principal["id"])
	assert.Equal(t, "counselor", principal["role"])
}

func TestProviderLogin_AssertsPrincipal(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/.auth/login/aad", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "220701230", user["id"])
	assert.Equal(t, "admin", user["role"])
}

func TestAppointments_RequireAuth(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["error"].(map[string]any)["code"])
}

func TestAppointments_ListScopedByRole(t *testing.T) {
	app := newTestApp(t)

	adminToken := login(t, app, "admin1", "password")
	resp, body := doJSON(t, app, http.MethodGet, "/appointments", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 2)

	studentToken := login(t, app, "student1", "password")
	resp, body = doJSON(t, app, http.MethodGet, "/appointments", studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["data"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "John Doe", list[0].(map[string]any)["studentName"])
}

func TestAppointments_CreateIsStudentOnly(t *testing.T) {
	app := newTestApp(t)

	counselorToken := login(t, app, "counselor1", "password")
	resp, body := doJSON(t, app, http.MethodPost, "/appointments", counselorToken, fiber.Map{
		"counselorId": "2", "date": "2025-10-01", "time": "11:00", "type": "Academic Counseling",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["error"].(map[string]any)["code"])

	studentToken := login(t, app, "student1", "password")
	resp, body = doJSON(t, app, http.MethodPost, "/appointments", studentToken, fiber.Map{
		"counselorId": "2", "date": "2025-10-01", "time": "11:00", "type": "Academic Counseling",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["data"].(map[string]any)
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, "Dr. Smith", created["counselorName"])
}

func TestAppointments_StatusTransitions(t *testing.T) {
	app := newTestApp(t)
	counselorToken := login(t, app, "counselor1", "password")

	// Students cannot decide appointments.
	studentToken := login(t, app, "student1", "password")
	resp, _ := doJSON(t, app, http.MethodPatch, "/appointments/2/status", studentToken, fiber.Map{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Seeded appointment 2 is pending; confirming it succeeds once.
	resp, body := doJSON(t, app, http.MethodPatch, "/appointments/2/status", counselorToken, fiber.Map{"status": "confirmed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "confirmed", body["data"].(map[string]any)["status"])

	// It is now terminal.
	resp, body = doJSON(t, app, http.MethodPatch, "/appointments/2/status", counselorToken, fiber.Map{"status": "rejected"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["error"].(map[string]any)["code"])

	// "pending" is never a valid target.
	resp, body = doJSON(t, app, http.MethodPatch, "/appointments/1/status", counselorToken, fiber.Map{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", body["error"].(map[string]any)["code"])
}

func TestCounselors_List(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "student1", "password")

	resp, body := doJSON(t, app, http.MethodGet, "/counselors", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["data"].([]any)
	require.Len(t, list, 2)
	assert.Equal(t, "Dr. Smith", list[0].(map[string]any)["name"])
}

func TestAnalytics_AdminOnly(t *testing.T) {
	app := newTestApp(t)

	studentToken := login(t, app, "student1", "password")
	resp, _ := doJSON(t, app, http.MethodGet, "/analytics", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken := login(t, app, "admin1", "password")
	resp, body := doJSON(t, app, http.MethodGet, "/analytics", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := body["data"].(map[string]any)
	assert.EqualValues(t, 2, report["totalBookings"])
	assert.EqualValues(t, 1, report["pendingAppointments"])
}

func TestHealth_Live(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alive", body["status"])
}
