package handler

import (
	"errors"
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/events/domain"
	"backoffice-api/internal/features/events/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler handles HTTP requests for store events.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(s *service.EventService) *EventHandler {
	return &EventHandler{
		service: s,
	}
}

// ListEvents handles GET /events.
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {array} domain.Event
// @Router /events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.service.List(c.Context())
	if err != nil {
		return internalError(c, "Failed to list events", err)
	}
	return c.Status(http.StatusOK).JSON(events)
}

// SaveEvent handles POST /events and PUT /events/:id.
// @Summary Create or update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body domain.Event true "Event"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Router /events [post]
func (h *EventHandler) SaveEvent(c *fiber.Ctx) error {
	var event domain.Event
	if err := c.BodyParser(&event); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		event.ID = id
	}

	if err := h.service.Save(c.Context(), &event); err != nil {
		if errors.Is(err, domain.ErrTitleRequired) || errors.Is(err, domain.ErrDateRequired) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to save event", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"id": event.ID})
}

// DeleteEvent handles DELETE /events/:id.
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} fiber.Map
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return internalError(c, "Failed to delete event", err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Event deleted"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
