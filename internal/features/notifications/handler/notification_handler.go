package handler

import (
	"errors"
	"net/http"

	"backoffice-api/internal/core/flash"
	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/notifications/domain"
	"backoffice-api/internal/features/notifications/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NotificationHandler handles HTTP requests for storefront announcements.
// Successful sends queue a flash notice the admin UI can poll.
type NotificationHandler struct {
	service *service.NotificationService
	notices *flash.Queue
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(s *service.NotificationService, notices *flash.Queue) *NotificationHandler {
	return &NotificationHandler{
		service: s,
		notices: notices,
	}
}

// ListNotifications handles GET /notifications.
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	notifications, err := h.service.List(c.Context())
	if err != nil {
		return internalError(c, "Failed to list notifications", err)
	}
	return c.Status(http.StatusOK).JSON(notifications)
}

// SaveNotification handles POST /notifications and PUT /notifications/:id.
// @Summary Create or update a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body domain.Notification true "Notification"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Router /notifications [post]
func (h *NotificationHandler) SaveNotification(c *fiber.Ctx) error {
	var notification domain.Notification
	if err := c.BodyParser(&notification); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		notification.ID = id
	}

	if err := h.service.Save(c.Context(), &notification); err != nil {
		if isValidation(err) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to save notification", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"id": notification.ID})
}

// SendNotification handles POST /notifications/:id/send.
// @Summary Send a notification
// @Description Marks the notification as sent now. A second send is refused.
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} domain.Notification
// @Failure 404 {object} fiber.Map
// @Failure 409 {object} fiber.Map
// @Router /notifications/{id}/send [post]
func (h *NotificationHandler) SendNotification(c *fiber.Ctx) error {
	notification, err := h.service.Send(c.Context(), c.Params("id"))
	switch {
	case err == nil:
		if pushErr := h.notices.Push(c.Context(), noticeScope(c), flash.LevelSuccess, "Notification sent"); pushErr != nil {
			logger.Get().Warn("Failed to queue notice", zap.Error(pushErr))
		}
		return c.Status(http.StatusOK).JSON(notification)
	case errors.Is(err, service.ErrNotificationNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadySent):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to send notification", err)
	}
}

// DeleteNotification handles DELETE /notifications/:id.
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} fiber.Map
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return internalError(c, "Failed to delete notification", err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Notification deleted"})
}

// DrainNotices handles GET /notices.
// @Summary Pending notices
// @Description Returns queued flash notices for the caller and clears them.
// @Tags Notifications
// @Produce json
// @Success 200 {array} flash.Notice
// @Router /notices [get]
func (h *NotificationHandler) DrainNotices(c *fiber.Ctx) error {
	notices, err := h.notices.Drain(c.Context(), noticeScope(c))
	if err != nil {
		return internalError(c, "Failed to drain notices", err)
	}
	if notices == nil {
		notices = []flash.Notice{}
	}
	return c.Status(http.StatusOK).JSON(notices)
}

// noticeScope keys the flash queue by the signed-in user when known.
func noticeScope(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok && id != "" {
		return id
	}
	return "admin"
}

func isValidation(err error) bool {
	return errors.Is(err, domain.ErrTitleRequired) ||
		errors.Is(err, domain.ErrMessageRequired) ||
		errors.Is(err, domain.ErrInvalidAudience)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
