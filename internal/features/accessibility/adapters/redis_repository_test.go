package adapters

import (
	"context"
	"testing"

	"courier-connect/internal/core/cache"
	"courier-connect/internal/features/accessibility/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*RedisPreferenceRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisPreferenceRepository(adapter), mr
}

func TestRedisPreferenceRepository_SaveGet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	prefs := domain.Defaults()
	prefs.FontSize = 20
	prefs.HighContrast = true

	err := repo.Save(ctx, "user-1", prefs)
	require.NoError(t, err)

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, prefs, *got)
}

func TestRedisPreferenceRepository_GetAbsent(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, err := repo.Get(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestRedisPreferenceRepository_GetMalformed verifies the store fails open
// when the snapshot cannot be decoded.
func TestRedisPreferenceRepository_GetMalformed(t *testing.T) {
	repo, mr := newTestRepository(t)

	mr.Set("c3_accessibility:user-1", "{not json")

	got, err := repo.Get(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestRedisPreferenceRepository_PartialSnapshot verifies fields missing from a
// stored snapshot keep their default values.
func TestRedisPreferenceRepository_PartialSnapshot(t *testing.T) {
	repo, mr := newTestRepository(t)

	mr.Set("c3_accessibility:user-1", `{"fontSize":18}`)

	got, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 18, got.FontSize)
	assert.True(t, got.KeyboardNavigation)
	assert.False(t, got.HighContrast)
}

func TestRedisPreferenceRepository_UsersAreIsolated(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	first := domain.Defaults()
	first.FontSize = 12
	require.NoError(t, repo.Save(ctx, "user-1", first))

	second := domain.Defaults()
	second.FontSize = 24
	require.NoError(t, repo.Save(ctx, "user-2", second))

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 12, got.FontSize)
}
