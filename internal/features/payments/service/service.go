package service

import (
	"context"
	"fmt"
	"time"

	"courier-connect/internal/features/payments/domain"
	"courier-connect/internal/features/payments/ports"

	"github.com/google/uuid"
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	repo ports.PaymentRepository
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(repo ports.PaymentRepository) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		repo: repo,
	}
}

// CreateForDelivery creates a pending payment for a delivery.
func (s *PaymentServiceImpl) CreateForDelivery(ctx context.Context, deliveryID string, amount float64, method domain.PaymentMethod) (*domain.Payment, error) {
	payment, err := domain.NewPayment(uuid.NewString(), deliveryID, amount, method, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("service: failed to save payment: %w", err)
	}

	return payment, nil
}

// Hold moves a pending payment into escrow.
func (s *PaymentServiceImpl) Hold(ctx context.Context, id string) (*domain.Payment, error) {
	return s.transition(ctx, id, (*domain.Payment).Hold)
}

// Complete releases a held payment to the traveler.
func (s *PaymentServiceImpl) Complete(ctx context.Context, id string) (*domain.Payment, error) {
	return s.transition(ctx, id, func(p *domain.Payment) error {
		return p.Complete(time.Now().UTC())
	})
}

// Refund returns a pending or held payment to the requester.
func (s *PaymentServiceImpl) Refund(ctx context.Context, id string) (*domain.Payment, error) {
	return s.transition(ctx, id, (*domain.Payment).Refund)
}

// List returns all payments, newest first.
func (s *PaymentServiceImpl) List(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list payments: %w", err)
	}

	out := append([]domain.Payment(nil), payments...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// ListByDelivery returns the payments for one delivery.
func (s *PaymentServiceImpl) ListByDelivery(ctx context.Context, deliveryID string) ([]domain.Payment, error) {
	payments, err := s.repo.FindByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list payments for delivery: %w", err)
	}

	return payments, nil
}

// Summary aggregates all payments into the earnings figures.
func (s *PaymentServiceImpl) Summary(ctx context.Context) (domain.Summary, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("service: failed to list payments: %w", err)
	}

	return domain.Summarize(payments), nil
}

func (s *PaymentServiceImpl) transition(ctx context.Context, id string, apply func(*domain.Payment) error) (*domain.Payment, error) {
	payment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load payment: %w", err)
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}

	if err := apply(payment); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("service: failed to save payment: %w", err)
	}

	return payment, nil
}
