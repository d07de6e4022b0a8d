package handler

import (
	"errors"
	"net/http"

	"courier-connect/internal/core/logger"
	"courier-connect/internal/features/payments/domain"
	"courier-connect/internal/features/payments/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for payments and earnings.
type PaymentHandler struct {
	service ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{
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

// List handles GET /payments.
// @Summary List payments
// @Description Lists payments, newest first, optionally filtered by delivery.
// @Tags Payments
// @Produce json
// @Param deliveryId query string false "Filter by delivery ID"
// @Security BearerAuth
// @Success 200 {array} domain.Payment
// @Failure 500 {object} ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	var (
		payments []domain.Payment
		err      error
	)
	if deliveryID := c.Query("deliveryId"); deliveryID != "" {
		payments, err = h.service.ListByDelivery(c.Context(), deliveryID)
	} else {
		payments, err = h.service.List(c.Context())
	}
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(payments)
}

// Summary handles GET /payments/summary.
// @Summary Earnings summary
// @Description Returns total earnings and the amount still pending or in escrow.
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Summary
// @Failure 500 {object} ErrorResponse
// @Router /payments/summary [get]
func (h *PaymentHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(summary)
}

// Hold handles POST /payments/:id/hold.
// @Summary Hold a payment
// @Description Moves a pending payment into escrow.
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Security BearerAuth
// @Success 200 {object} domain.Payment
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /payments/{id}/hold [post]
func (h *PaymentHandler) Hold(c *fiber.Ctx) error {
	payment, err := h.service.Hold(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(payment)
}

// Complete handles POST /payments/:id/complete.
// @Summary Complete a payment
// @Description Releases a held payment to the traveler.
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Security BearerAuth
// @Success 200 {object} domain.Payment
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /payments/{id}/complete [post]
func (h *PaymentHandler) Complete(c *fiber.Ctx) error {
	payment, err := h.service.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(payment)
}

// Refund handles POST /payments/:id/refund.
// @Summary Refund a payment
// @Description Returns a pending or held payment to the requester.
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Security BearerAuth
// @Success 200 {object} domain.Payment
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c *fiber.Ctx) error {
	payment, err := h.service.Refund(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(payment)
}

func (h *PaymentHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Payment not found",
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidMethod):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	default:
		logger.Get().Error("Payment operation failed", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}
}
