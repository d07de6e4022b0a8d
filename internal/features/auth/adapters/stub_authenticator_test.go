package adapters

import (
	"context"
	"testing"
	"time"

	"courier-connect/internal/features/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubAuthenticator_Authenticate(t *testing.T) {
	auth := NewStubAuthenticator(0)

	identity, err := auth.Authenticate(context.Background(), domain.Credentials{
		Email:    "saleem@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	require.NotNil(t, identity)

	assert.Equal(t, "saleem@example.com", identity.Email)
	assert.Equal(t, domain.RoleBoth, identity.Role)
	assert.Equal(t, domain.VerificationVerified, identity.VerificationStatus)
	assert.Equal(t, 4.8, identity.Rating)
	assert.Equal(t, 23, identity.TotalDeliveries)
}

func TestStubAuthenticator_Register(t *testing.T) {
	auth := NewStubAuthenticator(0)

	identity, err := auth.Register(context.Background(), domain.Registration{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "pw",
		Role:     domain.RoleTraveler,
	})
	require.NoError(t, err)
	require.NotNil(t, identity)

	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, "Ana", identity.Name)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.Equal(t, domain.RoleTraveler, identity.Role)
	assert.Equal(t, 5.0, identity.Rating)
	assert.Equal(t, 0, identity.TotalDeliveries)
	assert.Equal(t, domain.VerificationPending, identity.VerificationStatus)
	assert.Equal(t, time.Now().Format("2006-01-02"), identity.JoinDate)
}

func TestStubAuthenticator_RegisterAssignsUniqueIDs(t *testing.T) {
	auth := NewStubAuthenticator(0)
	ctx := context.Background()
	reg := domain.Registration{Name: "Ana", Email: "a@x.com", Password: "pw", Role: domain.RoleTraveler}

	first, err := auth.Register(ctx, reg)
	require.NoError(t, err)
	second, err := auth.Register(ctx, reg)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

// TestStubAuthenticator_SimulatedLatency verifies the stub blocks for the
// configured delay and honors cancellation.
func TestStubAuthenticator_SimulatedLatency(t *testing.T) {
	t.Run("Waits", func(t *testing.T) {
		auth := NewStubAuthenticator(50 * time.Millisecond)

		start := time.Now()
		_, err := auth.Authenticate(context.Background(), domain.Credentials{Email: "a@x.com", Password: "pw"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("Cancelled", func(t *testing.T) {
		auth := NewStubAuthenticator(5 * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := auth.Authenticate(ctx, domain.Credentials{Email: "a@x.com", Password: "pw"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
