package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courier-connect/internal/core/cache"
	"courier-connect/internal/features/auth/domain"
)

const sessionKeyPrefix = "c3_user:"

// RedisSessionRepository implements ports.SessionRepository using the cache
// adapter. Each session is a whole-object JSON snapshot under
// c3_user:<sessionID> with the session TTL as expiry.
type RedisSessionRepository struct {
	cache cache.Cache
}

// NewRedisSessionRepository creates a new RedisSessionRepository.
func NewRedisSessionRepository(c cache.Cache) *RedisSessionRepository {
	return &RedisSessionRepository{
		cache: c,
	}
}

// Save persists the session snapshot until its expiry.
func (r *RedisSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s is already expired", session.ID)
	}

	if err := r.cache.Set(ctx, sessionKeyPrefix+session.ID, data, ttl); err != nil {
		return fmt.Errorf("failed to save session to cache: %w", err)
	}

	return nil
}

// Get retrieves a session by ID, or (nil, nil) when absent.
func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := r.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete removes a session by ID.
func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to delete session from cache: %w", err)
	}
	return nil
}
