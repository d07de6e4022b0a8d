package handler

import (
	"errors"
	"net/http"

	"courier-connect/internal/core/logger"
	"courier-connect/internal/features/tracking/domain"
	"courier-connect/internal/features/tracking/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for delivery progress.
type TrackingHandler struct {
	service ports.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		service: service,
	}
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

// Track handles GET /tracking/:deliveryID.
// @Summary Track a delivery
// @Description Returns the milestone timeline and latest location of a delivery.
// @Tags Tracking
// @Produce json
// @Param deliveryID path string true "Delivery ID"
// @Security BearerAuth
// @Success 200 {object} domain.Progress
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tracking/{deliveryID} [get]
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	progress, err := h.service.Track(c.Context(), c.Params("deliveryID"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(progress)
}

// Advance handles POST /tracking/:deliveryID/advance.
// @Summary Advance a delivery milestone
// @Description Completes the current milestone of a delivery.
// @Tags Tracking
// @Produce json
// @Param deliveryID path string true "Delivery ID"
// @Security BearerAuth
// @Success 200 {object} domain.Progress
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tracking/{deliveryID}/advance [post]
func (h *TrackingHandler) Advance(c *fiber.Ctx) error {
	progress, err := h.service.Advance(c.Context(), c.Params("deliveryID"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(progress)
}

func (h *TrackingHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProgressNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "No progress record for delivery",
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrProgressComplete):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	default:
		logger.Get().Error("Tracking operation failed", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}
}
