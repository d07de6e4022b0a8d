package adapters

import (
	"context"
	"sync"
	"time"

	"courier-connect/internal/features/payments/domain"
)

// SeedPayments returns the sample payment history loaded into a fresh
// repository: one completed, one in escrow, one pending.
func SeedPayments() []domain.Payment {
	completedAt := time.Date(2025, 1, 22, 16, 45, 0, 0, time.UTC)
	return []domain.Payment{
		{
			ID:          "PAY-001",
			DeliveryID:  "DEL-001",
			Amount:      25.00,
			Status:      domain.StatusCompleted,
			Method:      domain.MethodCreditCard,
			CreatedAt:   time.Date(2025, 1, 22, 14, 30, 0, 0, time.UTC),
			CompletedAt: &completedAt,
		},
		{
			ID:         "PAY-002",
			DeliveryID: "DEL-002",
			Amount:     35.00,
			Status:     domain.StatusHeld,
			Method:     domain.MethodDebitCard,
			CreatedAt:  time.Date(2025, 1, 22, 10, 15, 0, 0, time.UTC),
		},
		{
			ID:         "PAY-003",
			DeliveryID: "DEL-003",
			Amount:     15.50,
			Status:     domain.StatusPending,
			Method:     domain.MethodCreditCard,
			CreatedAt:  time.Date(2025, 1, 21, 16, 20, 0, 0, time.UTC),
		},
	}
}

// MemoryPaymentRepository is an in-memory payment store keeping creation
// order.
type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]domain.Payment
	order    []string
}

// NewMemoryPaymentRepository creates a repository pre-loaded with the given
// payments.
func NewMemoryPaymentRepository(seed ...domain.Payment) *MemoryPaymentRepository {
	repo := &MemoryPaymentRepository{
		payments: make(map[string]domain.Payment, len(seed)),
		order:    make([]string, 0, len(seed)),
	}
	for _, p := range seed {
		repo.payments[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}
	return repo
}

// List returns all payments in insertion order.
func (m *MemoryPaymentRepository) List(_ context.Context) ([]domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Payment, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.payments[id])
	}
	return out, nil
}

// Get returns the payment with the given ID, or (nil, nil) when absent.
func (m *MemoryPaymentRepository) Get(_ context.Context, id string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// FindByDelivery returns the payments for one delivery in insertion order.
func (m *MemoryPaymentRepository) FindByDelivery(_ context.Context, deliveryID string) ([]domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Payment, 0)
	for _, id := range m.order {
		if m.payments[id].DeliveryID == deliveryID {
			out = append(out, m.payments[id])
		}
	}
	return out, nil
}

// Save inserts or replaces a payment.
func (m *MemoryPaymentRepository) Save(_ context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.payments[payment.ID]; !exists {
		m.order = append(m.order, payment.ID)
	}
	m.payments[payment.ID] = *payment
	return nil
}
