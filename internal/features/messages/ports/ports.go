package ports

import (
	"context"

	"courier-connect/internal/features/messages/domain"
)

// MessageService defines the primary port for marketplace chat.
type MessageService interface {
	// Send delivers a message from sender to receiver, optionally tied to a
	// delivery.
	Send(ctx context.Context, sender, receiver, content, deliveryID string) (*domain.Message, error)
	// Conversation returns the messages between two users in chronological
	// order.
	Conversation(ctx context.Context, userID, peerID string) ([]domain.Message, error)
	// MarkRead marks every message from peerID to userID as read.
	MarkRead(ctx context.Context, userID, peerID string) error
	// UnreadCount returns the number of unread messages addressed to the user.
	UnreadCount(ctx context.Context, userID string) (int, error)
}

// MessageRepository defines the secondary port for message storage.
type MessageRepository interface {
	// Append stores a message, enforcing the conversation ordering invariant.
	Append(ctx context.Context, message *domain.Message) error
	// Conversation returns the messages between two users in chronological
	// order.
	Conversation(ctx context.Context, userID, peerID string) ([]domain.Message, error)
	// MarkRead marks every message from peerID to userID as read.
	MarkRead(ctx context.Context, userID, peerID string) error
	// UnreadCount returns the number of unread messages addressed to the user.
	UnreadCount(ctx context.Context, userID string) (int, error)
}
