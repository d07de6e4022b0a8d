package handler

import (
	"errors"
	"net/http"

	"courier-connect/internal/core/logger"
	authdomain "courier-connect/internal/features/auth/domain"
	"courier-connect/internal/features/requests/domain"
	"courier-connect/internal/features/requests/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestHandler handles HTTP requests for the delivery marketplace.
type RequestHandler struct {
	service ports.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{
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

func identityFrom(c *fiber.Ctx) (*authdomain.Identity, bool) {
	identity, ok := c.Locals("identity").(*authdomain.Identity)
	return identity, ok
}

// Browse handles GET /requests.
// @Summary Browse delivery requests
// @Description Lists delivery requests, filtered and sorted by query parameters.
// @Tags Requests
// @Produce json
// @Param search query string false "Substring matched against title and description"
// @Param size query string false "Size filter: small, medium, large or all"
// @Param urgency query string false "Urgency filter: low, medium, high or all"
// @Param sort query string false "Sort key: newest, budget-high, budget-low, date or urgency"
// @Security BearerAuth
// @Success 200 {array} domain.DeliveryRequest
// @Failure 500 {object} ErrorResponse
// @Router /requests [get]
func (h *RequestHandler) Browse(c *fiber.Ctx) error {
	criteria := domain.Criteria{
		SearchTerm: c.Query("search"),
		Size:       c.Query("size"),
		Urgency:    c.Query("urgency"),
	}
	key := domain.SortKey(c.Query("sort", string(domain.SortNewest)))

	requests, err := h.service.Browse(c.Context(), criteria, key)
	if err != nil {
		logger.Get().Error("Failed to browse requests", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(requests)
}

// Get handles GET /requests/:id.
// @Summary Get a delivery request
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Security BearerAuth
// @Success 200 {object} domain.DeliveryRequest
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *fiber.Ctx) error {
	request, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(request)
}

// Create handles POST /requests.
// @Summary Post a delivery request
// @Description Posts a new request owned by the authenticated user.
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body domain.DeliveryRequest true "Request draft"
// @Security BearerAuth
// @Success 201 {object} domain.DeliveryRequest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "Not authenticated",
			RayID:   rayID(c),
		})
	}

	var draft domain.DeliveryRequest
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	created, err := h.service.Create(c.Context(), draft, ports.Requester{
		ID:     identity.ID,
		Name:   identity.Name,
		Rating: identity.Rating,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(created)
}

// Accept handles POST /requests/:id/accept.
// @Summary Accept a delivery request
// @Description Assigns the authenticated user as the traveler for a posted request.
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Security BearerAuth
// @Success 200 {object} domain.DeliveryRequest
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /requests/{id}/accept [post]
func (h *RequestHandler) Accept(c *fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "Not authenticated",
			RayID:   rayID(c),
		})
	}

	request, err := h.service.Accept(c.Context(), c.Params("id"), ports.Traveler{
		ID:   identity.ID,
		Name: identity.Name,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(request)
}

// Advance handles POST /requests/:id/advance.
// @Summary Advance a delivery request
// @Description Moves the request one step along the delivery lifecycle.
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Security BearerAuth
// @Success 200 {object} domain.DeliveryRequest
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /requests/{id}/advance [post]
func (h *RequestHandler) Advance(c *fiber.Ctx) error {
	request, err := h.service.Advance(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(request)
}

// Cancel handles POST /requests/:id/cancel.
// @Summary Cancel a delivery request
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Security BearerAuth
// @Success 200 {object} domain.DeliveryRequest
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(c *fiber.Ctx) error {
	request, err := h.service.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(request)
}

// writeError maps domain errors to HTTP statuses.
func (h *RequestHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Request not found",
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrMissingTitle),
		errors.Is(err, domain.ErrInvalidSize),
		errors.Is(err, domain.ErrInvalidUrgency),
		errors.Is(err, domain.ErrInvalidBudget),
		errors.Is(err, domain.ErrInvalidWeight):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrNotOpen),
		errors.Is(err, domain.ErrNotAccepted),
		errors.Is(err, domain.ErrTerminalStatus):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	default:
		logger.Get().Error("Request operation failed", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}
}
