package service

import (
	"context"
	"fmt"

	"courier-connect/internal/features/payments/domain"
	"courier-connect/internal/features/payments/ports"
)

// EscrowService adapts payments to the marketplace escrow flow, keyed by
// delivery rather than payment ID. Accepting a request opens an escrow;
// delivering releases it; cancelling refunds it.
type EscrowService struct {
	payments ports.PaymentService
	method   domain.PaymentMethod
}

// NewEscrowService creates an EscrowService funding escrows with the given
// method.
func NewEscrowService(payments ports.PaymentService, method domain.PaymentMethod) *EscrowService {
	return &EscrowService{
		payments: payments,
		method:   method,
	}
}

// Open creates a payment for the delivery and places it in escrow.
func (e *EscrowService) Open(ctx context.Context, deliveryID string, amount float64) error {
	payment, err := e.payments.CreateForDelivery(ctx, deliveryID, amount, e.method)
	if err != nil {
		return err
	}

	if _, err := e.payments.Hold(ctx, payment.ID); err != nil {
		return err
	}
	return nil
}

// Release completes the held payment for the delivery.
func (e *EscrowService) Release(ctx context.Context, deliveryID string) error {
	payment, err := e.active(ctx, deliveryID)
	if err != nil {
		return err
	}

	if _, err := e.payments.Complete(ctx, payment.ID); err != nil {
		return err
	}
	return nil
}

// Refund returns the open payment for the delivery to the requester.
func (e *EscrowService) Refund(ctx context.Context, deliveryID string) error {
	payment, err := e.active(ctx, deliveryID)
	if err != nil {
		return err
	}

	if _, err := e.payments.Refund(ctx, payment.ID); err != nil {
		return err
	}
	return nil
}

// active returns the delivery's open (non-terminal) payment.
func (e *EscrowService) active(ctx context.Context, deliveryID string) (*domain.Payment, error) {
	payments, err := e.payments.ListByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	for i := range payments {
		if !payments[i].Terminal() {
			return &payments[i], nil
		}
	}
	return nil, fmt.Errorf("no open payment for delivery %s: %w", deliveryID, domain.ErrPaymentNotFound)
}
