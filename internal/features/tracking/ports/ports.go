package ports

import (
	"context"

	"courier-connect/internal/features/tracking/domain"
)

// TrackingService defines the primary port for delivery progress.
type TrackingService interface {
	// Track returns the progress record for a delivery.
	Track(ctx context.Context, deliveryID string) (*domain.Progress, error)
	// Advance completes the current milestone of a delivery.
	Advance(ctx context.Context, deliveryID string) (*domain.Progress, error)
}

// ProgressRepository defines the secondary port for progress storage.
type ProgressRepository interface {
	// Get returns the progress record, or (nil, nil) when absent.
	Get(ctx context.Context, deliveryID string) (*domain.Progress, error)
	// Save inserts or replaces a progress record.
	Save(ctx context.Context, progress *domain.Progress) error
	// Delete removes a progress record. Deleting an absent record is not an
	// error.
	Delete(ctx context.Context, deliveryID string) error
}

// LocationProvider samples the traveler's current street position.
type LocationProvider interface {
	CurrentLocation(ctx context.Context, deliveryID string) (string, error)
}
