package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"courier-connect/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProgressRepository is a mock implementation of ports.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, deliveryID string) (*domain.Progress, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) Save(ctx context.Context, progress *domain.Progress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) Delete(ctx context.Context, deliveryID string) error {
	args := m.Called(ctx, deliveryID)
	return args.Error(0)
}

// MockLocationProvider is a mock implementation of ports.LocationProvider
type MockLocationProvider struct {
	mock.Mock
}

func (m *MockLocationProvider) CurrentLocation(ctx context.Context, deliveryID string) (string, error) {
	args := m.Called(ctx, deliveryID)
	return args.String(0), args.Error(1)
}

// memoryProgressRepository is a thread-safe in-memory repository used for the
// poller tests, where call ordering is not deterministic.
type memoryProgressRepository struct {
	mu      sync.Mutex
	records map[string]domain.Progress
}

func newMemoryProgressRepository() *memoryProgressRepository {
	return &memoryProgressRepository{records: make(map[string]domain.Progress)}
}

func (m *memoryProgressRepository) Get(_ context.Context, deliveryID string) (*domain.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.records[deliveryID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memoryProgressRepository) Save(_ context.Context, progress *domain.Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[progress.DeliveryID] = *progress
	return nil
}

func (m *memoryProgressRepository) Delete(_ context.Context, deliveryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, deliveryID)
	return nil
}

func TestTrack_NotFound(t *testing.T) {
	repo := new(MockProgressRepository)
	svc := NewTrackingService(repo, new(MockLocationProvider), time.Hour)
	defer svc.Close()

	repo.On("Get", mock.Anything, "DEL-404").Return(nil, nil)

	_, err := svc.Track(context.Background(), "DEL-404")
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)
}

func TestTrack_RepositoryError(t *testing.T) {
	repo := new(MockProgressRepository)
	svc := NewTrackingService(repo, new(MockLocationProvider), time.Hour)
	defer svc.Close()

	repo.On("Get", mock.Anything, "DEL-001").Return(nil, errors.New("boom"))

	_, err := svc.Track(context.Background(), "DEL-001")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProgressNotFound)
}

func TestAdvance_CompletesCurrentMilestone(t *testing.T) {
	repo := new(MockProgressRepository)
	svc := NewTrackingService(repo, new(MockLocationProvider), time.Hour)
	defer svc.Close()
	ctx := context.Background()

	progress, err := domain.NewProgress("DEL-001", 1, time.Now())
	require.NoError(t, err)
	repo.On("Get", ctx, "DEL-001").Return(progress, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Progress")).Return(nil)

	got, err := svc.Advance(ctx, "DEL-001")
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentIndex())
	assert.True(t, got.Milestones[1].Completed)
	repo.AssertExpectations(t)
}

func TestAdvance_CompletedDelivery(t *testing.T) {
	repo := new(MockProgressRepository)
	svc := NewTrackingService(repo, new(MockLocationProvider), time.Hour)
	defer svc.Close()
	ctx := context.Background()

	progress, err := domain.NewProgress("DEL-001", domain.MilestoneCount, time.Now())
	require.NoError(t, err)
	repo.On("Get", ctx, "DEL-001").Return(progress, nil)

	_, err = svc.Advance(ctx, "DEL-001")
	assert.ErrorIs(t, err, domain.ErrProgressComplete)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBegin_OpensRecordAtPickupStep(t *testing.T) {
	repo := newMemoryProgressRepository()
	svc := NewTrackingService(repo, new(MockLocationProvider), time.Hour)
	defer svc.Close()
	ctx := context.Background()

	require.NoError(t, svc.Begin(ctx, "DEL-001"))

	got, err := repo.Get(ctx, "DEL-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.CurrentIndex())
	assert.True(t, got.Milestones[0].Completed)
	assert.Equal(t, "Item Picked Up", got.Milestones[1].Title)
}

func TestFinish_DrivesRecordToCompletion(t *testing.T) {
	repo := newMemoryProgressRepository()
	svc := NewTrackingService(repo, new(MockLocationProvider), time.Hour)
	defer svc.Close()
	ctx := context.Background()

	progress, err := domain.NewProgress("DEL-001", 2, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, progress))

	require.NoError(t, svc.Finish(ctx, "DEL-001"))

	got, err := repo.Get(ctx, "DEL-001")
	require.NoError(t, err)
	assert.True(t, got.Complete())
	for i, m := range got.Milestones {
		assert.True(t, m.Completed, "milestone %d", i)
	}
}

func TestAbandon_DiscardsRecord(t *testing.T) {
	repo := newMemoryProgressRepository()
	svc := NewTrackingService(repo, new(MockLocationProvider), time.Hour)
	defer svc.Close()
	ctx := context.Background()

	progress, err := domain.NewProgress("DEL-001", 1, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, progress))

	require.NoError(t, svc.Abandon(ctx, "DEL-001"))

	_, err = svc.Track(ctx, "DEL-001")
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)
}

func TestRecorder_AdvanceReportsMilestoneErrors(t *testing.T) {
	repo := new(MockProgressRepository)
	svc := NewTrackingService(repo, new(MockLocationProvider), time.Hour)
	defer svc.Close()
	ctx := context.Background()

	done, err := domain.NewProgress("DEL-001", domain.MilestoneCount, time.Now())
	require.NoError(t, err)
	repo.On("Get", ctx, "DEL-001").Return(done, nil)

	err = svc.Recorder().Advance(ctx, "DEL-001")
	assert.ErrorIs(t, err, domain.ErrProgressComplete)
}

func TestPoller_PersistsLocationSamples(t *testing.T) {
	repo := newMemoryProgressRepository()
	feed := new(MockLocationProvider)
	feed.On("CurrentLocation", mock.Anything, "DEL-001").Return("Mission Street & 5th Street", nil)

	svc := NewTrackingService(repo, feed, 10*time.Millisecond)
	defer svc.Close()
	ctx := context.Background()

	require.NoError(t, svc.Begin(ctx, "DEL-001"))

	require.Eventually(t, func() bool {
		got, err := repo.Get(ctx, "DEL-001")
		return err == nil && got != nil && got.CurrentLocation == "Mission Street & 5th Street"
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPoller_StopsOnCompletedDelivery(t *testing.T) {
	repo := newMemoryProgressRepository()
	feed := new(MockLocationProvider)
	feed.On("CurrentLocation", mock.Anything, "DEL-002").Return("Mission Street & 5th Street", nil).Maybe()

	svc := NewTrackingService(repo, feed, 5*time.Millisecond)
	defer svc.Close()
	ctx := context.Background()

	require.NoError(t, svc.Begin(ctx, "DEL-002"))
	require.NoError(t, svc.Finish(ctx, "DEL-002"))

	// Give the poller a few ticks to observe the completed record and stop;
	// the feed must never be sampled for a finished delivery afterwards.
	time.Sleep(50 * time.Millisecond)
	feed.Calls = nil
	time.Sleep(50 * time.Millisecond)
	feed.AssertNotCalled(t, "CurrentLocation", mock.Anything, "DEL-002")
}

func TestPoller_StopsOnAbandonedDelivery(t *testing.T) {
	repo := newMemoryProgressRepository()
	feed := new(MockLocationProvider)
	feed.On("CurrentLocation", mock.Anything, "DEL-003").Return("Mission Street & 5th Street", nil).Maybe()

	svc := NewTrackingService(repo, feed, 5*time.Millisecond)
	defer svc.Close()
	ctx := context.Background()

	require.NoError(t, svc.Begin(ctx, "DEL-003"))
	require.NoError(t, svc.Abandon(ctx, "DEL-003"))

	// Give the poller a few ticks to observe the missing record and stop;
	// the feed must never be sampled for a cancelled delivery afterwards.
	time.Sleep(50 * time.Millisecond)
	feed.Calls = nil
	time.Sleep(50 * time.Millisecond)
	feed.AssertNotCalled(t, "CurrentLocation", mock.Anything, "DEL-003")

	// The record stays gone: nothing may resurrect it through a late sample.
	got, err := repo.Get(ctx, "DEL-003")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClose_StopsPollers(t *testing.T) {
	repo := newMemoryProgressRepository()
	feed := new(MockLocationProvider)
	feed.On("CurrentLocation", mock.Anything, mock.Anything).Return("Market Street & 2nd Street", nil).Maybe()

	svc := NewTrackingService(repo, feed, 5*time.Millisecond)
	require.NoError(t, svc.Begin(context.Background(), "DEL-001"))

	done := make(chan struct{})
	go func() {
		svc.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not stop the pollers")
	}
}
