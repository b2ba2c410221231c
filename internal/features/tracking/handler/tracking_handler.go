package handler

import (
	"errors"
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles the public order-tracking endpoint.
type TrackingHandler struct {
	service *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(s *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		service: s,
	}
}

// Track handles GET /tracking/:number.
// @Summary Track an order
// @Description Public lookup of an order by its number, with the fulfillment timeline.
// @Tags Tracking
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} service.Result
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tracking/{number} [get]
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Order number is required",
		})
	}

	result, err := h.service.Track(c.Context(), number)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		logger.Get().Error("Failed to track order",
			zap.String("order_number", number),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(result)
}
