package handler

import (
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/customers/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests for the derived customer list.
type CustomerHandler struct {
	service *service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(s *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service: s,
	}
}

// ListCustomers handles GET /customers.
// @Summary List customers
// @Description Aggregates orders into one customer per email; ?q= filters by name or email.
// @Tags Customers
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} domain.Customer
// @Failure 500 {object} map[string]string
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.service.List(c.Context(), c.Query("q"))
	if err != nil {
		logger.Get().Error("Failed to aggregate customers", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(customers)
}
