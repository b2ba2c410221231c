package handler

import (
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/search/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SearchHandler handles the back-office global search box.
type SearchHandler struct {
	service *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(s *service.SearchService) *SearchHandler {
	return &SearchHandler{
		service: s,
	}
}

// Search handles GET /search.
// @Summary Global search
// @Description Searches products and brands by name and orders by customer name or order number.
// @Tags Search
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} service.Result
// @Failure 500 {object} fiber.Map
// @Router /search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	result, err := h.service.Search(c.Context(), c.Query("q"))
	if err != nil {
		logger.Get().Error("Failed to search",
			zap.String("term", c.Query("q")),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.Status(http.StatusOK).JSON(result)
}
