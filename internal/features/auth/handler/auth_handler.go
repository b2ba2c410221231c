package handler

import (
	"errors"
	"net/http"
	"strings"

	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/features/auth/domain"
	"backoffice-api/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for sign-up, passcode verification
// and sessions.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{
		service: s,
	}
}

// SignUpRequest is the request body for account creation.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// VerifyRequest is the request body for passcode verification.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// CredentialsRequest is the request body for sign-in.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmailRequest carries just an email address.
type EmailRequest struct {
	Email string `json:"email"`
}

// ResetRequest is the request body for completing a password reset.
type ResetRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// TokenResponse carries a session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignUp handles POST /auth/signup.
// @Summary Sign up
// @Description Creates an unverified account and mails a 6-digit passcode.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Account details"
// @Success 201 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Failure 409 {object} fiber.Map
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	err := h.service.SignUp(c.Context(), req.Email, req.Password, req.FullName)
	switch {
	case err == nil:
		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"message": "Check your email for a verification code",
		})
	case errors.Is(err, domain.ErrEmailTaken):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrWeakPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrResendCooldown):
		// Unverified duplicate sign-up resends the code; inside the
		// cooldown window that resend is refused.
		return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to sign up", err)
	}
}

// VerifyCode handles POST /auth/verify-otp.
// @Summary Verify passcode
// @Description Confirms the emailed 6-digit passcode and returns a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Email and passcode"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} fiber.Map
// @Failure 401 {object} fiber.Map
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyCode(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	token, err := h.service.VerifyCode(c.Context(), req.Email, req.Code)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(TokenResponse{Token: token})
	case errors.Is(err, domain.ErrMalformedCode):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrInvalidCode):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to verify passcode", err)
	}
}

// ResendCode handles POST /auth/resend-otp.
// @Summary Resend passcode
// @Description Mails a fresh passcode unless the resend cooldown is running.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} fiber.Map
// @Failure 429 {object} fiber.Map
// @Router /auth/resend-otp [post]
func (h *AuthHandler) ResendCode(c *fiber.Ctx) error {
	var req EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	err := h.service.ResendCode(c.Context(), req.Email)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Code resent"})
	case errors.Is(err, domain.ErrResendCooldown):
		return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to resend passcode", err)
	}
}

// SignIn handles POST /auth/signin.
// @Summary Sign in
// @Description Exchanges email and password for a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} fiber.Map
// @Failure 403 {object} fiber.Map
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	token, err := h.service.SignIn(c.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(TokenResponse{Token: token})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrNotVerified):
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to sign in", err)
	}
}

// SignOut handles POST /auth/signout.
// @Summary Sign out
// @Description Revokes the session behind the bearer token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} fiber.Map
// @Failure 401 {object} fiber.Map
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Missing bearer token"})
	}

	if err := h.service.SignOut(c.Context(), token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, "Failed to sign out", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Signed out"})
}

// RequestPasswordReset handles POST /auth/reset-password.
// @Summary Request password reset
// @Description Mails a reset link. Always answers 200 regardless of whether the address exists.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} fiber.Map
// @Router /auth/reset-password [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return internalError(c, "Failed to request password reset", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "If the address exists, a reset link was sent",
	})
}

// ResetPassword handles POST /auth/reset-password/confirm.
// @Summary Complete password reset
// @Description Sets a new password from a valid reset token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Reset token and new password"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Failure 401 {object} fiber.Map
// @Router /auth/reset-password/confirm [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	err := h.service.ResetPassword(c.Context(), req.Token, req.Password)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Password updated"})
	case errors.Is(err, domain.ErrWeakPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidToken):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "Failed to reset password", err)
	}
}

// RequireSession is a middleware that rejects requests without a valid
// session token. The authenticated profile id is stored in locals under
// "user_id".
func (h *AuthHandler) RequireSession(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Missing bearer token"})
	}

	userID, err := h.service.ParseSession(c.Context(), token)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired session"})
	}

	c.Locals("user_id", userID)
	return c.Next()
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
