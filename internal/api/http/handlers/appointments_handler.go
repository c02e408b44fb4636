package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-edu/counseling-scheduler/internal/api/dto"
	"github.com/brightpath-edu/counseling-scheduler/internal/auth"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
	"github.com/brightpath-edu/counseling-scheduler/internal/service"
	apperrors "github.com/brightpath-edu/counseling-scheduler/pkg/util"
)

// AppointmentsHandler exposes appointment listing and mutations.
type AppointmentsHandler struct {
	appointments *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointments *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments}
}

// List handles GET /appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	appointments, err := h.appointments.List(c.Context(), principal.Identity.ID, principal.PrimaryRole())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromAppointments(appointments)})
}

// Create handles POST /appointments.
func (h *AppointmentsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	appointment, err := h.appointments.Create(c.Context(), principal.Identity, service.CreateAppointmentInput{
		CounselorID: req.CounselorID,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromAppointment(appointment)})
}

// UpdateStatus handles PATCH /appointments/:id/status.
func (h *AppointmentsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	appointment, err := h.appointments.SetStatus(c.Context(), principal.Identity, c.Params("id"), domain.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatusResponse{ID: appointment.ID, Status: string(appointment.Status)}})
}
