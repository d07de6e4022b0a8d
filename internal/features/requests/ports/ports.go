package ports

import (
	"context"

	"courier-connect/internal/features/requests/domain"
)

// Requester carries the identity fields a new request records about its owner.
type Requester struct {
	ID     string
	Name   string
	Rating float64
}

// Traveler carries the identity fields recorded when a request is accepted.
type Traveler struct {
	ID   string
	Name string
}

// RequestService defines the primary port for delivery request operations.
type RequestService interface {
	// Browse filters and orders the listed requests.
	Browse(ctx context.Context, criteria domain.Criteria, key domain.SortKey) ([]domain.DeliveryRequest, error)
	// Get returns a single request by ID.
	Get(ctx context.Context, id string) (*domain.DeliveryRequest, error)
	// Create posts a new request on behalf of a requester.
	Create(ctx context.Context, draft domain.DeliveryRequest, requester Requester) (*domain.DeliveryRequest, error)
	// Accept assigns a traveler to a posted request, opening its escrow and
	// milestone record.
	Accept(ctx context.Context, id string, traveler Traveler) (*domain.DeliveryRequest, error)
	// Advance moves an accepted request along the delivery lifecycle.
	Advance(ctx context.Context, id string) (*domain.DeliveryRequest, error)
	// Cancel cancels a non-terminal request, refunding any open escrow and
	// discarding its milestone record.
	Cancel(ctx context.Context, id string) (*domain.DeliveryRequest, error)
}

// RequestRepository defines the secondary port for request storage.
type RequestRepository interface {
	// List returns all requests in posting order.
	List(ctx context.Context) ([]domain.DeliveryRequest, error)
	// Get returns a request by ID, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*domain.DeliveryRequest, error)
	// Save inserts or replaces a request.
	Save(ctx context.Context, request *domain.DeliveryRequest) error
}

// Escrow settles marketplace payments alongside request lifecycle changes.
// Implemented by the payments feature.
type Escrow interface {
	// Open creates a pending escrow payment for a delivery.
	Open(ctx context.Context, deliveryID string, amount float64) error
	// Release completes the escrow when the delivery succeeds.
	Release(ctx context.Context, deliveryID string) error
	// Refund returns the escrow when the delivery is cancelled.
	Refund(ctx context.Context, deliveryID string) error
}

// ProgressLog maintains the milestone record for a delivery.
// Implemented by the tracking feature.
type ProgressLog interface {
	// Begin creates the milestone record when a request is accepted.
	Begin(ctx context.Context, deliveryID string) error
	// Advance completes the current milestone.
	Advance(ctx context.Context, deliveryID string) error
	// Finish drives the record to its terminal state.
	Finish(ctx context.Context, deliveryID string) error
	// Abandon discards the record when the request is cancelled, so no
	// tracking keeps running for a dead delivery.
	Abandon(ctx context.Context, deliveryID string) error
}
