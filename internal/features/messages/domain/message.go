package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrEmptyContent is returned when sending a blank message.
	ErrEmptyContent = errors.New("message content is required")
	// ErrMissingParticipant is returned when sender or receiver is absent.
	ErrMissingParticipant = errors.New("sender and receiver are required")
	// ErrSelfConversation is returned when sender and receiver are the same user.
	ErrSelfConversation = errors.New("cannot message yourself")
	// ErrTimestampRegression is returned when a message would appear before
	// the latest one in its conversation.
	ErrTimestampRegression = errors.New("message timestamp precedes conversation head")
)

// Message is a single chat message between two marketplace users.
type Message struct {
	// ID is the unique identifier for the message.
	ID string `json:"id"`
	// SenderID identifies the user who wrote the message.
	SenderID string `json:"senderId"`
	// ReceiverID identifies the user the message is addressed to.
	ReceiverID string `json:"receiverId"`
	// Content is the message text.
	Content string `json:"content"`
	// Timestamp is when the message was sent.
	Timestamp time.Time `json:"timestamp"`
	// Read reports whether the receiver has seen the message.
	Read bool `json:"read"`
	// DeliveryID optionally ties the message to a delivery.
	DeliveryID string `json:"deliveryId,omitempty"`
}

// Validate checks that the message is complete enough to send.
func (m *Message) Validate() error {
	if m.SenderID == "" || m.ReceiverID == "" {
		return ErrMissingParticipant
	}
	if m.SenderID == m.ReceiverID {
		return ErrSelfConversation
	}
	if strings.TrimSpace(m.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// Between reports whether the message belongs to the conversation between the
// two users, in either direction.
func (m *Message) Between(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}

// Follows checks the conversation ordering invariant: a new message may not
// carry a timestamp earlier than the latest message before it. prev is nil
// for the first message of a conversation.
func Follows(prev *Message, next *Message) error {
	if prev != nil && next.Timestamp.Before(prev.Timestamp) {
		return ErrTimestampRegression
	}
	return nil
}
