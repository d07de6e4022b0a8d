package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-connect/internal/features/messages/domain"
	"courier-connect/internal/features/messages/ports"

	"github.com/google/uuid"
)

// MessageServiceImpl implements ports.MessageService.
type MessageServiceImpl struct {
	repo ports.MessageRepository
}

// NewMessageService creates a new MessageServiceImpl.
func NewMessageService(repo ports.MessageRepository) *MessageServiceImpl {
	return &MessageServiceImpl{
		repo: repo,
	}
}

// Send validates and stores a new message.
func (s *MessageServiceImpl) Send(ctx context.Context, sender, receiver, content, deliveryID string) (*domain.Message, error) {
	message := &domain.Message{
		ID:         uuid.NewString(),
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		DeliveryID: deliveryID,
	}
	if err := message.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Append(ctx, message); err != nil {
		if errors.Is(err, domain.ErrTimestampRegression) {
			return nil, err
		}
		return nil, fmt.Errorf("service: failed to append message: %w", err)
	}

	return message, nil
}

// Conversation returns the thread between two users in chronological order.
func (s *MessageServiceImpl) Conversation(ctx context.Context, userID, peerID string) ([]domain.Message, error) {
	messages, err := s.repo.Conversation(ctx, userID, peerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load conversation: %w", err)
	}

	return messages, nil
}

// MarkRead marks every message from peerID to userID as read.
func (s *MessageServiceImpl) MarkRead(ctx context.Context, userID, peerID string) error {
	if err := s.repo.MarkRead(ctx, userID, peerID); err != nil {
		return fmt.Errorf("service: failed to mark conversation read: %w", err)
	}

	return nil
}

// UnreadCount returns the number of unread messages addressed to the user.
func (s *MessageServiceImpl) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count unread messages: %w", err)
	}

	return count, nil
}
