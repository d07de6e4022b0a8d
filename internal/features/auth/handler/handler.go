package handler

import (
	"errors"
	"net/http"

	"courier-connect/internal/core/logger"
	"courier-connect/internal/features/auth/domain"
	"courier-connect/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles HTTP requests for authentication and sessions.
type SessionHandler struct {
	service ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// SessionResponse is the response body for login and registration.
type SessionResponse struct {
	// Identity is the authenticated user.
	Identity domain.Identity `json:"identity"`
	// Token is the bearer token addressing the session.
	Token string `json:"token"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// Login handles POST /auth/login.
// @Summary Log in
// @Description Authenticates credentials and opens a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Login credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var creds domain.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	identity, token, err := h.service.Login(c.Context(), creds)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Login failed", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(SessionResponse{
		Identity: *identity,
		Token:    token,
	})
}

// Register handles POST /auth/register.
// @Summary Register
// @Description Creates a new identity and opens a session for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body domain.Registration true "Registration details"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var reg domain.Registration
	if err := c.BodyParser(&reg); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	identity, token, err := h.service.Register(c.Context(), reg)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) ||
			errors.Is(err, domain.ErrMissingName) ||
			errors.Is(err, domain.ErrInvalidRole) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Registration failed", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusCreated).JSON(SessionResponse{
		Identity: *identity,
		Token:    token,
	})
}

// Logout handles POST /auth/logout.
// @Summary Log out
// @Description Destroys the session addressed by the bearer token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "Missing bearer token",
			RayID:   rayID(c),
		})
	}

	if err := h.service.Logout(c.Context(), token); err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Message: "Invalid session token",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Logout failed", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}

// Me handles GET /auth/me.
// @Summary Current identity
// @Description Returns the identity of the authenticated session.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Identity
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(*domain.Identity)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "Not authenticated",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(identity)
}
