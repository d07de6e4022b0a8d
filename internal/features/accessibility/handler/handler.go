package handler

import (
	"net/http"

	"courier-connect/internal/core/logger"
	"courier-connect/internal/features/accessibility/domain"
	"courier-connect/internal/features/accessibility/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PreferenceHandler handles HTTP requests for accessibility preferences.
type PreferenceHandler struct {
	service ports.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(service ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		service: service,
	}
}

// GetPreferences handles GET /preferences.
// @Summary Get accessibility preferences
// @Description Returns the stored preferences for the authenticated user, merged over defaults.
// @Tags Preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Preferences
// @Failure 500 {object} map[string]string
// @Router /preferences [get]
func (h *PreferenceHandler) GetPreferences(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	prefs, err := h.service.Load(c.Context(), userID)
	if err != nil {
		logger.Get().Error("Failed to load preferences",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(prefs)
}

// UpdatePreferences handles PATCH /preferences.
// @Summary Update accessibility preferences
// @Description Merges a partial update into the stored preferences and returns the result.
// @Tags Preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param patch body domain.Patch true "Fields to change"
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /preferences [patch]
func (h *PreferenceHandler) UpdatePreferences(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	var patch domain.Patch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	prefs, err := h.service.Update(c.Context(), userID, patch)
	if err != nil {
		logger.Get().Error("Failed to update preferences",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(prefs)
}
