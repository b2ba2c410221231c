package handler

import (
	"errors"
	"net/http"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/users/domain"
	"backoffice-api/internal/features/users/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for back-office users and roles.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{
		service: s,
	}
}

// AssignRoleRequest is the request body for a role assignment.
type AssignRoleRequest struct {
	Role domain.Role `json:"role"`
}

// ListUsers handles GET /users.
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return internalError(c, "Failed to list users", err)
	}
	return c.Status(http.StatusOK).JSON(users)
}

// AssignRole handles PUT /users/:id/role.
// @Summary Assign a role
// @Description Replaces the user's role with the given one.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body AssignRoleRequest true "Role"
// @Success 200 {object} domain.User
// @Failure 400 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /users/{id}/role [put]
func (h *UserHandler) AssignRole(c *fiber.Ctx) error {
	var req AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.service.AssignRole(c.Context(), c.Params("id"), req.Role)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(user)
	case errors.Is(err, domain.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to assign role", err)
	}
}

// RemoveRole handles DELETE /users/:id/role.
// @Summary Remove roles
// @Description Strips all roles from the user.
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} fiber.Map
// @Router /users/{id}/role [delete]
func (h *UserHandler) RemoveRole(c *fiber.Ctx) error {
	user, err := h.service.RemoveRole(c.Context(), c.Params("id"))
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(user)
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to remove role", err)
	}
}

// DeleteUser handles DELETE /users/:id.
// @Summary Delete a user
// @Description Removes the user's role rows, then the profile.
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	err := h.service.Delete(c.Context(), c.Params("id"))
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(fiber.Map{"message": "User deleted"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to delete user", err)
	}
}

// ListPermissions handles GET /settings/permissions.
// @Summary Permission matrix
// @Description Returns each permission with the roles holding it.
// @Tags Users
// @Produce json
// @Success 200 {array} service.PermissionRow
// @Router /settings/permissions [get]
func (h *UserHandler) ListPermissions(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.PermissionMatrix())
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
