package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/brightpath-edu/counseling-scheduler/internal/api/dto"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to the appointment service over its JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetAuthToken installs the bearer token for subsequent calls.
func (c *HTTPClient) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		if json.Unmarshal(payload, &envelope) == nil && envelope.Error.Code == "INVALID_CREDENTIALS" {
			return ErrInvalidCredentials
		}
		return &TransportError{Op: op, Err: fmt.Errorf("status %d: %s", resp.StatusCode, envelope.Error.Message)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

type authEnvelope struct {
	Data struct {
		User dto.IdentityResponse `json:"user"`
		Auth dto.AuthResponse     `json:"auth"`
	} `json:"data"`
}

// Authenticate exchanges credentials for an identity and token.
func (c *HTTPClient) Authenticate(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var envelope authEnvelope
	err := c.do(ctx, "authenticate", http.MethodPost, "/auth/login",
		dto.LoginRequest{Username: creds.Username, Password: creds.Password}, &envelope)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Identity: envelope.Data.User.ToIdentity(), Token: envelope.Data.Auth.Token}, nil
}

// AuthenticateProvider completes the provider flow against the mock
// provider endpoint.
func (c *HTTPClient) AuthenticateProvider(ctx context.Context, provider string) (*AuthResult, error) {
	var envelope authEnvelope
	err := c.do(ctx, "provider login", http.MethodGet, "/.auth/login/"+url.PathEscape(provider), nil, &envelope)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Identity: envelope.Data.User.ToIdentity(), Token: envelope.Data.Auth.Token}, nil
}

// SessionInfo queries the identity endpoint for the current principal.
func (c *HTTPClient) SessionInfo(ctx context.Context) (*domain.Identity, error) {
	var response dto.SessionInfoResponse
	if err := c.do(ctx, "session info", http.MethodGet, "/.auth/me", nil, &response); err != nil {
		return nil, err
	}
	if response.ClientPrincipal == nil {
		return nil, nil
	}
	return response.ClientPrincipal.ToIdentity(), nil
}

// ListAppointments fetches the appointments visible to the subject. The
// server derives visibility from the token; the explicit parameters stay
// for contract compatibility.
func (c *HTTPClient) ListAppointments(ctx context.Context, _ string, _ domain.Role) ([]domain.Appointment, error) {
	var envelope struct {
		Data []dto.AppointmentResponse `json:"data"`
	}
	if err := c.do(ctx, "list appointments", http.MethodGet, "/appointments", nil, &envelope); err != nil {
		return nil, err
	}
	appointments := make([]domain.Appointment, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		appointments = append(appointments, item.ToAppointment())
	}
	return appointments, nil
}

// ListCounselors fetches the bookable roster.
func (c *HTTPClient) ListCounselors(ctx context.Context) ([]domain.Counselor, error) {
	var envelope struct {
		Data []dto.CounselorResponse `json:"data"`
	}
	if err := c.do(ctx, "list counselors", http.MethodGet, "/counselors", nil, &envelope); err != nil {
		return nil, err
	}
	counselors := make([]domain.Counselor, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		counselors = append(counselors, domain.Counselor{
			ID:             item.ID,
			Name:           item.Name,
			Specialization: item.Specialization,
			Available:      item.Available,
		})
	}
	return counselors, nil
}

// CreateAppointment books a new appointment.
func (c *HTTPClient) CreateAppointment(ctx context.Context, req BookingRequest) (*domain.Appointment, error) {
	var envelope struct {
		Data dto.AppointmentResponse `json:"data"`
	}
	payload := dto.CreateAppointmentRequest{
		CounselorID: req.CounselorID,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
	}
	if err := c.do(ctx, "create appointment", http.MethodPost, "/appointments", payload, &envelope); err != nil {
		return nil, err
	}
	appointment := envelope.Data.ToAppointment()
	return &appointment, nil
}

// SetAppointmentStatus applies a counselor decision.
func (c *HTTPClient) SetAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*StatusUpdate, error) {
	var envelope struct {
		Data dto.StatusResponse `json:"data"`
	}
	path := "/appointments/" + url.PathEscape(id) + "/status"
	payload := dto.UpdateStatusRequest{Status: string(status)}
	if err := c.do(ctx, "update appointment status", http.MethodPatch, path, payload, &envelope); err != nil {
		return nil, err
	}
	return &StatusUpdate{ID: envelope.Data.ID, Status: domain.AppointmentStatus(envelope.Data.Status)}, nil
}

// GetAnalytics fetches the admin booking report.
func (c *HTTPClient) GetAnalytics(ctx context.Context) (*domain.Analytics, error) {
	var envelope struct {
		Data dto.AnalyticsResponse `json:"data"`
	}
	if err := c.do(ctx, "get analytics", http.MethodGet, "/analytics", nil, &envelope); err != nil {
		return nil, err
	}
	workload := make([]domain.CounselorLoad, 0, len(envelope.Data.CounselorWorkload))
	for _, row := range envelope.Data.CounselorWorkload {
		workload = append(workload, domain.CounselorLoad{Name: row.Name, Appointments: row.Appointments})
	}
	return &domain.Analytics{
		TotalBookings:       envelope.Data.TotalBookings,
		PendingAppointments: envelope.Data.PendingAppointments,
		CounselorWorkload:   workload,
	}, nil
}
