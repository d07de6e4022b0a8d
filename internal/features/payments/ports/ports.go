package ports

import (
	"context"

	"courier-connect/internal/features/payments/domain"
)

// PaymentService defines the primary port for marketplace payments.
type PaymentService interface {
	// CreateForDelivery creates a pending payment for a delivery.
	CreateForDelivery(ctx context.Context, deliveryID string, amount float64, method domain.PaymentMethod) (*domain.Payment, error)
	// Hold moves a pending payment into escrow.
	Hold(ctx context.Context, id string) (*domain.Payment, error)
	// Complete releases a held payment to the traveler.
	Complete(ctx context.Context, id string) (*domain.Payment, error)
	// Refund returns a pending or held payment to the requester.
	Refund(ctx context.Context, id string) (*domain.Payment, error)
	// List returns all payments, newest first.
	List(ctx context.Context) ([]domain.Payment, error)
	// ListByDelivery returns the payments for one delivery.
	ListByDelivery(ctx context.Context, deliveryID string) ([]domain.Payment, error)
	// Summary aggregates payments into the earnings figures.
	Summary(ctx context.Context) (domain.Summary, error)
}

// PaymentRepository defines the secondary port for payment storage.
type PaymentRepository interface {
	// List returns all payments in creation order.
	List(ctx context.Context) ([]domain.Payment, error)
	// Get returns a payment by ID, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*domain.Payment, error)
	// FindByDelivery returns the payments for one delivery.
	FindByDelivery(ctx context.Context, deliveryID string) ([]domain.Payment, error)
	// Save inserts or replaces a payment.
	Save(ctx context.Context, payment *domain.Payment) error
}
