package handler

import (
	"errors"
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/promotions/domain"
	"backoffice-api/internal/features/promotions/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PromotionHandler handles HTTP requests for discount campaigns.
type PromotionHandler struct {
	service *service.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(s *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		service: s,
	}
}

// ListPromotions handles GET /promotions.
// @Summary List promotions
// @Tags Promotions
// @Produce json
// @Success 200 {array} domain.Promotion
// @Router /promotions [get]
func (h *PromotionHandler) ListPromotions(c *fiber.Ctx) error {
	promotions, err := h.service.List(c.Context())
	if err != nil {
		return internalError(c, "Failed to list promotions", err)
	}
	return c.Status(http.StatusOK).JSON(promotions)
}

// SavePromotion handles POST /promotions and PUT /promotions/:id.
// @Summary Create or update a promotion
// @Tags Promotions
// @Accept json
// @Produce json
// @Param request body domain.Promotion true "Promotion"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Router /promotions [post]
func (h *PromotionHandler) SavePromotion(c *fiber.Ctx) error {
	var promotion domain.Promotion
	if err := c.BodyParser(&promotion); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		promotion.ID = id
	}

	if err := h.service.Save(c.Context(), &promotion); err != nil {
		if isValidation(err) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to save promotion", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"id": promotion.ID})
}

// DeletePromotion handles DELETE /promotions/:id.
// @Summary Delete a promotion
// @Tags Promotions
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} fiber.Map
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return internalError(c, "Failed to delete promotion", err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Promotion deleted"})
}

func isValidation(err error) bool {
	return errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrInvalidDiscountType) ||
		errors.Is(err, domain.ErrInvalidDiscountValue) ||
		errors.Is(err, domain.ErrInvalidDateRange)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
