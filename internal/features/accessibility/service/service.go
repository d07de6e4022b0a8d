package service

import (
	"context"
	"fmt"

	"courier-connect/internal/features/accessibility/domain"
	"courier-connect/internal/features/accessibility/ports"
)

// PreferenceServiceImpl implements ports.PreferenceService.
type PreferenceServiceImpl struct {
	repo ports.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceServiceImpl.
func NewPreferenceService(repo ports.PreferenceRepository) *PreferenceServiceImpl {
	return &PreferenceServiceImpl{
		repo: repo,
	}
}

// Load returns the stored preferences for a user, falling back to defaults
// when no usable snapshot exists.
func (s *PreferenceServiceImpl) Load(ctx context.Context, userID string) (domain.Preferences, error) {
	stored, err := s.repo.Get(ctx, userID)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("service: failed to load preferences: %w", err)
	}

	if stored == nil {
		return domain.Defaults(), nil
	}

	return *stored, nil
}

// Update merges the patch into the current preferences, persists the result
// and returns it.
func (s *PreferenceServiceImpl) Update(ctx context.Context, userID string, patch domain.Patch) (domain.Preferences, error) {
	current, err := s.Load(ctx, userID)
	if err != nil {
		return domain.Preferences{}, err
	}

	merged := current.Merge(patch)

	if err := s.repo.Save(ctx, userID, merged); err != nil {
		return domain.Preferences{}, fmt.Errorf("service: failed to save preferences: %w", err)
	}

	return merged, nil
}
