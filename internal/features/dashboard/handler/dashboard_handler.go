package handler

import (
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/dashboard/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler handles the back-office landing page.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(s *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: s,
	}
}

// Stats handles GET /dashboard.
// @Summary Dashboard stats
// @Description Returns product and order counts, revenue and the five most recent orders.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 500 {object} fiber.Map
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		logger.Get().Error("Failed to compute dashboard stats", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.Status(http.StatusOK).JSON(stats)
}
