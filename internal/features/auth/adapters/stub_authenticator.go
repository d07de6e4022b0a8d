package adapters

import (
	"context"
	"time"

	"courier-connect/internal/core/logger"
	"courier-connect/internal/features/auth/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StubAuthenticator implements ports.Authenticator without a real identity
// backend. It always succeeds after a fixed simulated latency and fabricates
// a profile around the supplied email. Deployments with a real backend swap
// this adapter out.
type StubAuthenticator struct {
	latency time.Duration
	logger  *zap.Logger
}

// NewStubAuthenticator creates a StubAuthenticator with the given simulated
// round-trip latency.
func NewStubAuthenticator(latency time.Duration) *StubAuthenticator {
	return &StubAuthenticator{
		latency: latency,
		logger:  logger.Get(),
	}
}

// Authenticate fabricates an established, verified profile for the email.
func (a *StubAuthenticator) Authenticate(ctx context.Context, creds domain.Credentials) (*domain.Identity, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	a.logger.Debug("Stub authenticator resolving login",
		zap.String("email", creds.Email),
	)

	return &domain.Identity{
		ID:                 "1",
		Name:               "Saleem Yousef",
		Email:              creds.Email,
		Role:               domain.RoleBoth,
		Rating:             4.8,
		TotalDeliveries:    23,
		JoinDate:           "2024-01-15",
		VerificationStatus: domain.VerificationVerified,
		Phone:              "+1 (555) 123-4567",
		Location:           "San Francisco, CA",
	}, nil
}

// Register fabricates a fresh, unproven profile for the registration.
func (a *StubAuthenticator) Register(ctx context.Context, reg domain.Registration) (*domain.Identity, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	a.logger.Debug("Stub authenticator resolving registration",
		zap.String("email", reg.Email),
		zap.String("role", string(reg.Role)),
	)

	return &domain.Identity{
		ID:                 uuid.NewString(),
		Name:               reg.Name,
		Email:              reg.Email,
		Role:               reg.Role,
		Rating:             5.0,
		TotalDeliveries:    0,
		JoinDate:           time.Now().Format("2006-01-02"),
		VerificationStatus: domain.VerificationPending,
	}, nil
}

// wait blocks for the simulated latency, honoring context cancellation.
func (a *StubAuthenticator) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(a.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
