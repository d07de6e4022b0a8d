package adapters

import (
	"context"
	"sync"

	"courier-connect/internal/features/requests/domain"
)

// MemoryRequestRepository is an in-memory request store. Listings keep their
// insertion order so browse results are deterministic.
type MemoryRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]domain.DeliveryRequest
	order    []string
}

// NewMemoryRequestRepository creates a repository pre-loaded with the given
// requests.
func NewMemoryRequestRepository(seed ...domain.DeliveryRequest) *MemoryRequestRepository {
	repo := &MemoryRequestRepository{
		requests: make(map[string]domain.DeliveryRequest, len(seed)),
		order:    make([]string, 0, len(seed)),
	}
	for _, r := range seed {
		repo.requests[r.ID] = r
		repo.order = append(repo.order, r.ID)
	}
	return repo
}

// List returns all requests in insertion order.
func (m *MemoryRequestRepository) List(_ context.Context) ([]domain.DeliveryRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.DeliveryRequest, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.requests[id])
	}
	return out, nil
}

// Get returns the request with the given ID, or (nil, nil) when absent.
func (m *MemoryRequestRepository) Get(_ context.Context, id string) (*domain.DeliveryRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// Save inserts or replaces a request.
func (m *MemoryRequestRepository) Save(_ context.Context, request *domain.DeliveryRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.requests[request.ID]; !exists {
		m.order = append(m.order, request.ID)
	}
	m.requests[request.ID] = *request
	return nil
}
