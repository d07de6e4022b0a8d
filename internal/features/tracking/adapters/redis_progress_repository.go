package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"courier-connect/internal/core/cache"
	"courier-connect/internal/features/tracking/domain"
)

const progressKeyPrefix = "c3_progress:"

// RedisProgressRepository implements ports.ProgressRepository using the cache
// adapter. Each delivery owns a whole-object JSON snapshot under
// c3_progress:<deliveryID>.
type RedisProgressRepository struct {
	cache cache.Cache
}

// NewRedisProgressRepository creates a new RedisProgressRepository.
func NewRedisProgressRepository(c cache.Cache) *RedisProgressRepository {
	return &RedisProgressRepository{
		cache: c,
	}
}

// Get retrieves the progress snapshot for a delivery, or (nil, nil) when none
// exists.
func (r *RedisProgressRepository) Get(ctx context.Context, deliveryID string) (*domain.Progress, error) {
	data, err := r.cache.Get(ctx, progressKeyPrefix+deliveryID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get progress from cache: %w", err)
	}

	var progress domain.Progress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	return &progress, nil
}

// Save persists the progress snapshot for a delivery. Snapshots do not expire.
func (r *RedisProgressRepository) Save(ctx context.Context, progress *domain.Progress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := r.cache.Set(ctx, progressKeyPrefix+progress.DeliveryID, data, 0); err != nil {
		return fmt.Errorf("failed to save progress to cache: %w", err)
	}

	return nil
}

// Delete removes the progress snapshot for a delivery.
func (r *RedisProgressRepository) Delete(ctx context.Context, deliveryID string) error {
	if err := r.cache.Delete(ctx, progressKeyPrefix+deliveryID); err != nil {
		return fmt.Errorf("failed to delete progress from cache: %w", err)
	}

	return nil
}
