package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"courier-connect/internal/core/logger"
	"courier-connect/internal/features/tracking/domain"
	"courier-connect/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// TrackingServiceImpl implements ports.TrackingService. It also maintains the
// milestone records opened by the marketplace when a request is accepted, and
// runs one location poller per active delivery.
type TrackingServiceImpl struct {
	repo     ports.ProgressRepository
	feed     ports.LocationProvider
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTrackingService creates a new TrackingServiceImpl. interval is the
// location sampling period.
func NewTrackingService(repo ports.ProgressRepository, feed ports.LocationProvider, interval time.Duration) *TrackingServiceImpl {
	ctx, cancel := context.WithCancel(context.Background())
	return &TrackingServiceImpl{
		repo:     repo,
		feed:     feed,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Close stops all location pollers and waits for them to exit.
func (s *TrackingServiceImpl) Close() {
	s.cancel()
	s.wg.Wait()
}

// Track returns the progress record for a delivery.
func (s *TrackingServiceImpl) Track(ctx context.Context, deliveryID string) (*domain.Progress, error) {
	return s.load(ctx, deliveryID)
}

// Advance completes the current milestone of a delivery.
func (s *TrackingServiceImpl) Advance(ctx context.Context, deliveryID string) (*domain.Progress, error) {
	progress, err := s.load(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if err := progress.Advance(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, progress); err != nil {
		return nil, fmt.Errorf("service: failed to save progress: %w", err)
	}

	return progress, nil
}

// Begin opens the milestone record for a freshly accepted delivery: the
// acceptance step is complete and the pickup step becomes current. A location
// poller starts alongside it.
func (s *TrackingServiceImpl) Begin(ctx context.Context, deliveryID string) error {
	progress, err := domain.NewProgress(deliveryID, 1, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, progress); err != nil {
		return fmt.Errorf("service: failed to save progress: %w", err)
	}

	s.wg.Add(1)
	go s.poll(deliveryID)

	return nil
}

// Finish drives the milestone record to completion.
func (s *TrackingServiceImpl) Finish(ctx context.Context, deliveryID string) error {
	progress, err := s.load(ctx, deliveryID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for !progress.Complete() {
		if err := progress.Advance(now); err != nil {
			return err
		}
	}

	if err := s.repo.Save(ctx, progress); err != nil {
		return fmt.Errorf("service: failed to save progress: %w", err)
	}

	return nil
}

// Abandon discards the milestone record of a cancelled delivery. The
// location poller exits on its next tick once the record is gone.
func (s *TrackingServiceImpl) Abandon(ctx context.Context, deliveryID string) error {
	if err := s.repo.Delete(ctx, deliveryID); err != nil {
		return fmt.Errorf("service: failed to discard progress: %w", err)
	}

	return nil
}

// poll refreshes the delivery's location every interval until the delivery
// completes, its record is discarded, or the service shuts down.
func (s *TrackingServiceImpl) poll(deliveryID string) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if done := s.refreshLocation(deliveryID); done {
				return
			}
		}
	}
}

// refreshLocation samples and persists the delivery's position. It reports
// true when the poller should stop.
func (s *TrackingServiceImpl) refreshLocation(deliveryID string) bool {
	ctx, cancel := context.WithTimeout(s.ctx, s.interval)
	defer cancel()

	progress, err := s.repo.Get(ctx, deliveryID)
	if err != nil {
		logger.Get().Warn("Failed to load progress for location refresh",
			zap.String("delivery_id", deliveryID),
			zap.Error(err),
		)
		return false
	}
	if progress == nil || progress.Complete() {
		return true
	}

	location, err := s.feed.CurrentLocation(ctx, deliveryID)
	if err != nil {
		logger.Get().Warn("Failed to sample delivery location",
			zap.String("delivery_id", deliveryID),
			zap.Error(err),
		)
		return false
	}

	progress.SetLocation(location, time.Now().UTC())
	if err := s.repo.Save(ctx, progress); err != nil {
		logger.Get().Warn("Failed to persist delivery location",
			zap.String("delivery_id", deliveryID),
			zap.Error(err),
		)
	}
	return false
}

func (s *TrackingServiceImpl) load(ctx context.Context, deliveryID string) (*domain.Progress, error) {
	progress, err := s.repo.Get(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load progress: %w", err)
	}
	if progress == nil {
		return nil, domain.ErrProgressNotFound
	}
	return progress, nil
}
