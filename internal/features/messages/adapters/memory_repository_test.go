package adapters

import (
	"context"
	"testing"
	"time"

	"courier-connect/internal/features/messages/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMessageRepository_ConversationIsChronological(t *testing.T) {
	repo := NewMemoryMessageRepository(SeedMessages()...)
	ctx := context.Background()

	msgs, err := repo.Conversation(ctx, "current-user", "1")
	require.NoError(t, err)
	require.Len(t, msgs, 5)

	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].Timestamp.Before(msgs[i-1].Timestamp),
			"message %d out of order", i)
	}

	// Both directions of the pair see the same thread.
	reversed, err := repo.Conversation(ctx, "1", "current-user")
	require.NoError(t, err)
	assert.Equal(t, msgs, reversed)
}

func TestMemoryMessageRepository_AppendRejectsRegression(t *testing.T) {
	repo := NewMemoryMessageRepository(SeedMessages()...)
	ctx := context.Background()

	stale := &domain.Message{
		ID:         "6",
		SenderID:   "current-user",
		ReceiverID: "1",
		Content:    "See you soon!",
		Timestamp:  time.Date(2025, 1, 22, 14, 0, 0, 0, time.UTC),
	}
	assert.ErrorIs(t, repo.Append(ctx, stale), domain.ErrTimestampRegression)

	fresh := &domain.Message{
		ID:         "6",
		SenderID:   "current-user",
		ReceiverID: "1",
		Content:    "See you soon!",
		Timestamp:  time.Date(2025, 1, 22, 14, 20, 0, 0, time.UTC),
	}
	assert.NoError(t, repo.Append(ctx, fresh))
}

func TestMemoryMessageRepository_AppendIgnoresOtherConversations(t *testing.T) {
	repo := NewMemoryMessageRepository(SeedMessages()...)
	ctx := context.Background()

	// An older timestamp is fine in a conversation with no history.
	other := &domain.Message{
		ID:         "7",
		SenderID:   "current-user",
		ReceiverID: "3",
		Content:    "Hi! Are the art supplies still available?",
		Timestamp:  time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, repo.Append(ctx, other))
}

func TestMemoryMessageRepository_MarkReadAndUnreadCount(t *testing.T) {
	repo := NewMemoryMessageRepository()
	ctx := context.Background()

	base := time.Date(2025, 1, 22, 15, 0, 0, 0, time.UTC)
	for i, sender := range []string{"3", "3", "1"} {
		require.NoError(t, repo.Append(ctx, &domain.Message{
			ID:         string(rune('a' + i)),
			SenderID:   sender,
			ReceiverID: "current-user",
			Content:    "hello",
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	count, err := repo.UnreadCount(ctx, "current-user")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, repo.MarkRead(ctx, "current-user", "3"))

	count, err = repo.UnreadCount(ctx, "current-user")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Nobody else's unread counters move.
	count, err = repo.UnreadCount(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
