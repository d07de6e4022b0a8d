package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courier-connect/internal/core/cache"
	"courier-connect/internal/features/tracking/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *RedisProgressRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewRedisProgressRepository(c)
}

func TestRedisProgressRepository_RoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	now := time.Date(2025, 1, 22, 12, 45, 0, 0, time.UTC)
	progress, err := domain.NewProgress("DEL-001", 1, now)
	require.NoError(t, err)
	progress.SetLocation("Mission Street & 5th Street", now)

	require.NoError(t, repo.Save(ctx, progress))

	got, err := repo.Get(ctx, "DEL-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "DEL-001", got.DeliveryID)
	assert.Equal(t, 1, got.CurrentIndex())
	assert.Equal(t, "Mission Street & 5th Street", got.CurrentLocation)
	assert.True(t, got.Milestones[0].Completed)
}

func TestRedisProgressRepository_GetMissReturnsNilNil(t *testing.T) {
	repo := setupRepo(t)

	got, err := repo.Get(context.Background(), "DEL-404")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisProgressRepository_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	progress, err := domain.NewProgress("DEL-001", 1, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, progress))

	require.NoError(t, repo.Delete(ctx, "DEL-001"))

	got, err := repo.Get(ctx, "DEL-001")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting a delivery that was never tracked is not an error.
	assert.NoError(t, repo.Delete(ctx, "DEL-404"))
}

func TestHTTPFeedProvider_CurrentLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/DEL-001", r.URL.Path)
		json.NewEncoder(w).Encode(feedResponse{CurrentLocation: "Market Street & 2nd Street"})
	}))
	defer server.Close()

	provider := NewHTTPFeedProvider(server.URL + "/feed/")

	got, err := provider.CurrentLocation(context.Background(), "DEL-001")
	require.NoError(t, err)
	assert.Equal(t, "Market Street & 2nd Street", got)
}

func TestHTTPFeedProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewHTTPFeedProvider(server.URL)

	_, err := provider.CurrentLocation(context.Background(), "DEL-001")
	assert.Error(t, err)
}

func TestSimulatedFeedProvider_WalksTheRoute(t *testing.T) {
	provider := NewSimulatedFeedProvider()
	ctx := context.Background()

	var seen []string
	for i := 0; i < len(simulatedRoute)+1; i++ {
		loc, err := provider.CurrentLocation(ctx, "DEL-001")
		require.NoError(t, err)
		seen = append(seen, loc)
	}

	assert.Equal(t, simulatedRoute[0], seen[0])
	assert.Equal(t, simulatedRoute[1], seen[1])
	// The route loops back around after the last stop.
	assert.Equal(t, simulatedRoute[0], seen[len(simulatedRoute)])
}

func TestSimulatedFeedProvider_TracksDeliveriesIndependently(t *testing.T) {
	provider := NewSimulatedFeedProvider()
	ctx := context.Background()

	first, err := provider.CurrentLocation(ctx, "DEL-001")
	require.NoError(t, err)
	_, err = provider.CurrentLocation(ctx, "DEL-001")
	require.NoError(t, err)

	other, err := provider.CurrentLocation(ctx, "DEL-002")
	require.NoError(t, err)
	assert.Equal(t, first, other)
}
