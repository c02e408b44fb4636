package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-edu/counseling-scheduler/internal/api/dto"
	"github.com/brightpath-edu/counseling-scheduler/internal/repository"
)

// CounselorsHandler serves the bookable counselor listing.
type CounselorsHandler struct {
	counselors repository.CounselorRepository
}

// NewCounselorsHandler constructs handler.
func NewCounselorsHandler(counselors repository.CounselorRepository) *CounselorsHandler {
	return &CounselorsHandler{counselors: counselors}
}

// List handles GET /counselors.
func (h *CounselorsHandler) List(c *fiber.Ctx) error {
	counselors, err := h.counselors.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromCounselors(counselors)})
}
