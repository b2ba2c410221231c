package handler

import (
	"errors"
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/catalog/domain"
	"backoffice-api/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for products, categories and brands.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: s,
	}
}

// ListProducts handles GET /products.
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param q query string false "Name filter"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context(), c.Query("q"))
	if err != nil {
		return internalError(c, "Failed to list products", err)
	}
	return c.Status(http.StatusOK).JSON(products)
}

// SaveProduct handles POST /products and PUT /products/:id.
// @Summary Create or update a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param product body domain.Product true "Product"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (h *CatalogHandler) SaveProduct(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		product.ID = id
	}

	if err := h.service.SaveProduct(c.Context(), &product); err != nil {
		if isValidation(err) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to save product", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"id": product.ID})
}

// DeleteProduct handles DELETE /products/:id.
// @Summary Delete a product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Router /products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return internalError(c, "Failed to delete product", err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Product deleted"})
}

// ListCategories handles GET /categories.
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return internalError(c, "Failed to list categories", err)
	}
	return c.Status(http.StatusOK).JSON(categories)
}

// SaveCategory handles POST /categories and PUT /categories/:id.
// @Summary Create or update a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param category body domain.Category true "Category"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /categories [post]
func (h *CatalogHandler) SaveCategory(c *fiber.Ctx) error {
	var category domain.Category
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		category.ID = id
	}

	if err := h.service.SaveCategory(c.Context(), &category); err != nil {
		if isValidation(err) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to save category", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"id": category.ID})
}

// DeleteCategory handles DELETE /categories/:id.
// @Summary Delete a category
// @Tags Catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return internalError(c, "Failed to delete category", err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Category deleted"})
}

// ListBrands handles GET /brands.
// @Summary List brands
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Brand
// @Router /brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.service.ListBrands(c.Context())
	if err != nil {
		return internalError(c, "Failed to list brands", err)
	}
	return c.Status(http.StatusOK).JSON(brands)
}

// SaveBrand handles POST /brands and PUT /brands/:id.
// @Summary Create or update a brand
// @Tags Catalog
// @Accept json
// @Produce json
// @Param brand body domain.Brand true "Brand"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /brands [post]
func (h *CatalogHandler) SaveBrand(c *fiber.Ctx) error {
	var brand domain.Brand
	if err := c.BodyParser(&brand); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		brand.ID = id
	}

	if err := h.service.SaveBrand(c.Context(), &brand); err != nil {
		if isValidation(err) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to save brand", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"id": brand.ID})
}

// DeleteBrand handles DELETE /brands/:id.
// @Summary Delete a brand
// @Tags Catalog
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} map[string]string
// @Router /brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	if err := h.service.DeleteBrand(c.Context(), c.Params("id")); err != nil {
		return internalError(c, "Failed to delete brand", err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Brand deleted"})
}

// isValidation matches the domain validation sentinels.
func isValidation(err error) bool {
	return errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrInvalidStock)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
