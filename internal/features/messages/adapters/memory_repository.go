package adapters

import (
	"context"
	"sync"
	"time"

	"courier-connect/internal/features/messages/domain"
)

// SeedMessages returns the sample conversation loaded into a fresh
// repository: the laptop delivery thread between the stub user and their
// traveler.
func SeedMessages() []domain.Message {
	return []domain.Message{
		{
			ID:         "1",
			SenderID:   "1",
			ReceiverID: "current-user",
			Content:    "Hi! I can help deliver your laptop. I'm traveling from your area to downtown today.",
			Timestamp:  time.Date(2025, 1, 22, 13, 30, 0, 0, time.UTC),
			Read:       true,
			DeliveryID: "DEL-001",
		},
		{
			ID:         "2",
			SenderID:   "current-user",
			ReceiverID: "1",
			Content:    "That would be perfect! What time works best for pickup?",
			Timestamp:  time.Date(2025, 1, 22, 13, 32, 0, 0, time.UTC),
			Read:       true,
			DeliveryID: "DEL-001",
		},
		{
			ID:         "3",
			SenderID:   "1",
			ReceiverID: "current-user",
			Content:    "I can pick it up around 1 PM if that works for you. I'll be careful with it.",
			Timestamp:  time.Date(2025, 1, 22, 13, 35, 0, 0, time.UTC),
			Read:       true,
			DeliveryID: "DEL-001",
		},
		{
			ID:         "4",
			SenderID:   "current-user",
			ReceiverID: "1",
			Content:    "Perfect! I'll have it ready. It's in the original packaging.",
			Timestamp:  time.Date(2025, 1, 22, 13, 37, 0, 0, time.UTC),
			Read:       true,
			DeliveryID: "DEL-001",
		},
		{
			ID:         "5",
			SenderID:   "1",
			ReceiverID: "current-user",
			Content:    "Perfect! I'll pick up the laptop around 1 PM.",
			Timestamp:  time.Date(2025, 1, 22, 14, 15, 0, 0, time.UTC),
			Read:       true,
			DeliveryID: "DEL-001",
		},
	}
}

// MemoryMessageRepository is an in-memory message store. Messages are held in
// append order, which the ordering invariant keeps chronological per
// conversation.
type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []domain.Message
}

// NewMemoryMessageRepository creates a repository pre-loaded with the given
// messages.
func NewMemoryMessageRepository(seed ...domain.Message) *MemoryMessageRepository {
	return &MemoryMessageRepository{
		messages: append([]domain.Message(nil), seed...),
	}
}

// Append stores a message. A message carrying a timestamp earlier than the
// latest one in its conversation is rejected.
func (m *MemoryMessageRepository) Append(_ context.Context, message *domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var prev *domain.Message
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Between(message.SenderID, message.ReceiverID) {
			prev = &m.messages[i]
			break
		}
	}
	if err := domain.Follows(prev, message); err != nil {
		return err
	}

	m.messages = append(m.messages, *message)
	return nil
}

// Conversation returns the messages between two users in chronological order.
func (m *MemoryMessageRepository) Conversation(_ context.Context, userID, peerID string) ([]domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Message, 0)
	for _, msg := range m.messages {
		if msg.Between(userID, peerID) {
			out = append(out, msg)
		}
	}
	return out, nil
}

// MarkRead marks every message from peerID to userID as read.
func (m *MemoryMessageRepository) MarkRead(_ context.Context, userID, peerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.messages {
		if m.messages[i].SenderID == peerID && m.messages[i].ReceiverID == userID {
			m.messages[i].Read = true
		}
	}
	return nil
}

// UnreadCount returns the number of unread messages addressed to the user.
func (m *MemoryMessageRepository) UnreadCount(_ context.Context, userID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, msg := range m.messages {
		if msg.ReceiverID == userID && !msg.Read {
			count++
		}
	}
	return count, nil
}
