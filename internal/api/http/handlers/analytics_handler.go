package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-edu/counseling-scheduler/internal/api/dto"
	"github.com/brightpath-edu/counseling-scheduler/internal/service"
)

// AnalyticsHandler serves the admin booking report.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Report handles GET /analytics.
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	report, err := h.analytics.Report(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromAnalytics(report)})
}
