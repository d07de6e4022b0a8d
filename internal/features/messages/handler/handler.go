package handler

import (
	"errors"
	"net/http"

	"courier-connect/internal/core/logger"
	"courier-connect/internal/features/messages/domain"
	"courier-connect/internal/features/messages/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MessageHandler handles HTTP requests for marketplace chat.
type MessageHandler struct {
	service ports.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{
		service: service,
	}
}

// SendMessageRequest is the request body for sending a message.
type SendMessageRequest struct {
	// ReceiverID identifies the user the message is addressed to.
	ReceiverID string `json:"receiverId"`
	// Content is the message text.
	Content string `json:"content"`
	// DeliveryID optionally ties the message to a delivery.
	DeliveryID string `json:"deliveryId,omitempty"`
}

// UnreadResponse is the response body for the unread counter.
type UnreadResponse struct {
	// Unread is the number of unread messages addressed to the user.
	Unread int `json:"unread"`
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

func userID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals("userID").(string)
	return id, ok
}

// Send handles POST /messages.
// @Summary Send a message
// @Description Sends a message from the authenticated user to another user.
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body SendMessageRequest true "Message to send"
// @Security BearerAuth
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	sender, ok := userID(c)
	if !ok {
		return h.unauthenticated(c)
	}

	var body SendMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	message, err := h.service.Send(c.Context(), sender, body.ReceiverID, body.Content, body.DeliveryID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(message)
}

// Unread handles GET /messages/unread.
// @Summary Count unread messages
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnreadResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /messages/unread [get]
func (h *MessageHandler) Unread(c *fiber.Ctx) error {
	user, ok := userID(c)
	if !ok {
		return h.unauthenticated(c)
	}

	count, err := h.service.UnreadCount(c.Context(), user)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(UnreadResponse{Unread: count})
}

// Conversation handles GET /messages/:peerID.
// @Summary Get a conversation
// @Description Returns the thread between the authenticated user and a peer, oldest first.
// @Tags Messages
// @Produce json
// @Param peerID path string true "Peer user ID"
// @Security BearerAuth
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /messages/{peerID} [get]
func (h *MessageHandler) Conversation(c *fiber.Ctx) error {
	user, ok := userID(c)
	if !ok {
		return h.unauthenticated(c)
	}

	messages, err := h.service.Conversation(c.Context(), user, c.Params("peerID"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(messages)
}

// MarkRead handles POST /messages/:peerID/read.
// @Summary Mark a conversation read
// @Description Marks every message from the peer to the authenticated user as read.
// @Tags Messages
// @Produce json
// @Param peerID path string true "Peer user ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /messages/{peerID}/read [post]
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	user, ok := userID(c)
	if !ok {
		return h.unauthenticated(c)
	}

	if err := h.service.MarkRead(c.Context(), user, c.Params("peerID")); err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Conversation marked read",
	})
}

func (h *MessageHandler) unauthenticated(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Message: "Not authenticated",
		RayID:   rayID(c),
	})
}

func (h *MessageHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrMissingParticipant),
		errors.Is(err, domain.ErrSelfConversation):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrTimestampRegression):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	default:
		logger.Get().Error("Message operation failed", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}
}
