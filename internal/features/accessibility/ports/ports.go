package ports

import (
	"context"

	"courier-connect/internal/features/accessibility/domain"
)

// PreferenceService defines the primary port for preference operations.
type PreferenceService interface {
	// Load returns the stored preferences merged over defaults. Absent or
	// unreadable snapshots fail open to the defaults.
	Load(ctx context.Context, userID string) (domain.Preferences, error)
	// Update merges a partial patch into the current preferences, persists
	// the result and returns it.
	Update(ctx context.Context, userID string, patch domain.Patch) (domain.Preferences, error)
}

// PreferenceRepository defines the secondary port for preference storage.
type PreferenceRepository interface {
	// Get returns the stored snapshot, or (nil, nil) when none is usable.
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	// Save persists the whole preference snapshot for the user.
	Save(ctx context.Context, userID string, prefs domain.Preferences) error
}
