package handler

import (
	"errors"
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/orders/domain"
	"backoffice-api/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// OrderDetail is an order together with its line items and the timeline
// completion flags for the fulfillment stages.
type OrderDetail struct {
	Order  domain.Order       `json:"order"`
	Items  []domain.OrderItem `json:"items"`
	Stages []bool             `json:"stages_completed"`
}

// UpdateStatusRequest is the request body for a status change.
type UpdateStatusRequest struct {
	Status domain.Status `json:"status"`
}

// ListOrders handles GET /orders.
// @Summary List orders
// @Description Returns all orders, newest first; ?q= filters by order number or customer name.
// @Tags Orders
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} domain.Order
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.service.List(c.Context(), c.Query("q"))
	if err != nil {
		logger.Get().Error("Failed to list orders",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles GET /orders/:id.
// @Summary Get order by ID
// @Description Returns an order with its items and stage completion flags.
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderDetail
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID(c),
		})
	}

	order, items, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to fetch order",
			zap.String("order_id", id),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(OrderDetail{
		Order:  *order,
		Items:  items,
		Stages: domain.StageCompletion(order.Status),
	})
}

// UpdateStatus handles PATCH /orders/:id/status.
// @Summary Update order status
// @Description Sets a new status on the order and returns the refetched row.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	order, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Internal Server Error"

		if errors.Is(err, service.ErrOrderNotFound) {
			status = http.StatusNotFound
			msg = "Order not found"
		} else if errors.Is(err, service.ErrInvalidStatus) {
			status = http.StatusBadRequest
			msg = "Invalid order status"
		} else {
			logger.Get().Error("Failed to update order status",
				zap.String("order_id", id),
				zap.String("ray_id", rayID(c)),
				zap.Error(err),
			)
		}

		return c.Status(status).JSON(ErrorResponse{
			Message: msg,
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// rayID extracts the request id set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
