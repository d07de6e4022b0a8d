package service

import (
	"context"
	"fmt"
	"time"

	"courier-connect/internal/features/requests/domain"
	"courier-connect/internal/features/requests/ports"

	"github.com/google/uuid"
)

// RequestServiceImpl implements ports.RequestService.
type RequestServiceImpl struct {
	repo     ports.RequestRepository
	escrow   ports.Escrow
	progress ports.ProgressLog
}

// NewRequestService creates a new RequestServiceImpl.
func NewRequestService(repo ports.RequestRepository, escrow ports.Escrow, progress ports.ProgressLog) *RequestServiceImpl {
	return &RequestServiceImpl{
		repo:     repo,
		escrow:   escrow,
		progress: progress,
	}
}

// Browse lists requests matching the criteria, ordered by the sort key.
func (s *RequestServiceImpl) Browse(ctx context.Context, criteria domain.Criteria, key domain.SortKey) ([]domain.DeliveryRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests: %w", err)
	}

	return domain.Order(domain.Select(requests, criteria), key), nil
}

// Get returns the request with the given ID.
func (s *RequestServiceImpl) Get(ctx context.Context, id string) (*domain.DeliveryRequest, error) {
	request, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Create validates and posts a new request for the requester.
func (s *RequestServiceImpl) Create(ctx context.Context, draft domain.DeliveryRequest, requester ports.Requester) (*domain.DeliveryRequest, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	draft.ID = uuid.NewString()
	draft.RequesterID = requester.ID
	draft.RequesterName = requester.Name
	draft.RequesterRating = requester.Rating
	draft.Status = domain.StatusPosted
	draft.TravelerID = ""
	draft.TravelerName = ""
	draft.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, &draft); err != nil {
		return nil, fmt.Errorf("service: failed to save request: %w", err)
	}

	return &draft, nil
}

// Accept assigns the traveler to a posted request, places its budget in
// escrow and opens the milestone record.
func (s *RequestServiceImpl) Accept(ctx context.Context, id string, traveler ports.Traveler) (*domain.DeliveryRequest, error) {
	request, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := request.Accept(traveler.ID, traveler.Name); err != nil {
		return nil, err
	}

	if err := s.escrow.Open(ctx, request.ID, request.Budget); err != nil {
		return nil, fmt.Errorf("service: failed to open escrow: %w", err)
	}
	if err := s.progress.Begin(ctx, request.ID); err != nil {
		return nil, fmt.Errorf("service: failed to open milestone record: %w", err)
	}

	if err := s.repo.Save(ctx, request); err != nil {
		// A failed acceptance must not leave escrow or a milestone record
		// behind for a request still in posted.
		_ = s.escrow.Refund(ctx, request.ID)
		_ = s.progress.Abandon(ctx, request.ID)
		return nil, fmt.Errorf("service: failed to save request: %w", err)
	}

	return request, nil
}

// Advance moves the request one lifecycle step and keeps the milestone record
// and escrow in step with it.
func (s *RequestServiceImpl) Advance(ctx context.Context, id string) (*domain.DeliveryRequest, error) {
	request, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := request.Advance(); err != nil {
		return nil, err
	}

	switch request.Status {
	case domain.StatusInTransit:
		if err := s.progress.Advance(ctx, request.ID); err != nil {
			return nil, fmt.Errorf("service: failed to advance milestone record: %w", err)
		}
	case domain.StatusDelivered:
		if err := s.progress.Finish(ctx, request.ID); err != nil {
			return nil, fmt.Errorf("service: failed to close milestone record: %w", err)
		}
		if err := s.escrow.Release(ctx, request.ID); err != nil {
			return nil, fmt.Errorf("service: failed to release escrow: %w", err)
		}
	}

	if err := s.repo.Save(ctx, request); err != nil {
		return nil, fmt.Errorf("service: failed to save request: %w", err)
	}

	return request, nil
}

// Cancel cancels a non-terminal request. When the request had been accepted
// the escrow is refunded and the milestone record is discarded.
func (s *RequestServiceImpl) Cancel(ctx context.Context, id string) (*domain.DeliveryRequest, error) {
	request, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	underway := request.Status == domain.StatusAccepted || request.Status == domain.StatusInTransit

	if err := request.Cancel(); err != nil {
		return nil, err
	}

	if underway {
		if err := s.escrow.Refund(ctx, request.ID); err != nil {
			return nil, fmt.Errorf("service: failed to refund escrow: %w", err)
		}
		if err := s.progress.Abandon(ctx, request.ID); err != nil {
			return nil, fmt.Errorf("service: failed to discard milestone record: %w", err)
		}
	}

	if err := s.repo.Save(ctx, request); err != nil {
		return nil, fmt.Errorf("service: failed to save request: %w", err)
	}

	return request, nil
}

func (s *RequestServiceImpl) load(ctx context.Context, id string) (*domain.DeliveryRequest, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load request: %w", err)
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}
	return request, nil
}
