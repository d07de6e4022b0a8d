package adapters

import (
	"context"
	"testing"
	"time"

	"courier-connect/internal/features/payments/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPaymentRepository_SeedShape(t *testing.T) {
	repo := NewMemoryPaymentRepository(SeedPayments()...)
	ctx := context.Background()

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, domain.StatusCompleted, listed[0].Status)
	assert.NotNil(t, listed[0].CompletedAt)
	assert.Equal(t, domain.StatusHeld, listed[1].Status)
	assert.Nil(t, listed[1].CompletedAt)
	assert.Equal(t, domain.StatusPending, listed[2].Status)
}

func TestMemoryPaymentRepository_FindByDelivery(t *testing.T) {
	repo := NewMemoryPaymentRepository(SeedPayments()...)
	ctx := context.Background()

	found, err := repo.FindByDelivery(ctx, "DEL-002")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "PAY-002", found[0].ID)

	none, err := repo.FindByDelivery(ctx, "DEL-404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryPaymentRepository_SaveAndGet(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	ctx := context.Background()

	payment, err := domain.NewPayment("PAY-010", "DEL-010", 18, domain.MethodPayPal, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, payment))

	got, err := repo.Get(ctx, "PAY-010")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusPending, got.Status)

	missing, err := repo.Get(ctx, "PAY-404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
