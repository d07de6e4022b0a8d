package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"courier-connect/internal/core/cache"
	"courier-connect/internal/core/logger"
	"courier-connect/internal/features/accessibility/domain"

	"go.uber.org/zap"
)

const preferenceKeyPrefix = "c3_accessibility:"

// RedisPreferenceRepository implements ports.PreferenceRepository using the cache adapter.
// Each user owns a whole-object JSON snapshot under c3_accessibility:<userID>.
type RedisPreferenceRepository struct {
	cache cache.Cache
}

// NewRedisPreferenceRepository creates a new RedisPreferenceRepository.
func NewRedisPreferenceRepository(c cache.Cache) *RedisPreferenceRepository {
	return &RedisPreferenceRepository{
		cache: c,
	}
}

// Get retrieves the preference snapshot for a user.
// A missing or malformed snapshot yields (nil, nil): the store fails open and
// the service falls back to defaults.
func (r *RedisPreferenceRepository) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	data, err := r.cache.Get(ctx, preferenceKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences from cache: %w", err)
	}

	// Unmarshal over defaults so fields missing from older snapshots keep
	// their default values.
	prefs := domain.Defaults()
	if err := json.Unmarshal(data, &prefs); err != nil {
		logger.Get().Warn("Discarding malformed preference snapshot",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, nil
	}

	return &prefs, nil
}

// Save persists the preference snapshot for a user. Snapshots do not expire.
func (r *RedisPreferenceRepository) Save(ctx context.Context, userID string, prefs domain.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := r.cache.Set(ctx, preferenceKeyPrefix+userID, data, 0); err != nil {
		return fmt.Errorf("failed to save preferences to cache: %w", err)
	}

	return nil
}
