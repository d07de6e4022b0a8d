package ports

import (
	"context"

	"courier-connect/internal/features/auth/domain"
)

// SessionService defines the primary port for authentication and sessions.
type SessionService interface {
	// Login authenticates the credentials and opens a session.
	Login(ctx context.Context, creds domain.Credentials) (*domain.Identity, string, error)
	// Register creates a new identity and opens a session for it.
	Register(ctx context.Context, reg domain.Registration) (*domain.Identity, string, error)
	// Logout destroys the session addressed by the token.
	Logout(ctx context.Context, token string) error
	// Current resolves the token to the authenticated identity.
	Current(ctx context.Context, token string) (*domain.Identity, error)
}

// Authenticator defines the secondary port to the identity backend.
// The deployed adapter is a deterministic stub; a real backend replaces it
// without touching the session service.
type Authenticator interface {
	// Authenticate resolves credentials into an identity.
	Authenticate(ctx context.Context, creds domain.Credentials) (*domain.Identity, error)
	// Register creates a fresh identity from a registration.
	Register(ctx context.Context, reg domain.Registration) (*domain.Identity, error)
}

// SessionRepository defines the secondary port for session storage.
type SessionRepository interface {
	// Save persists the session snapshot until its expiry.
	Save(ctx context.Context, session *domain.Session) error
	// Get returns the session by ID, or (nil, nil) when absent.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	// Delete removes the session by ID.
	Delete(ctx context.Context, sessionID string) error
}

// TokenCodec signs and validates session tokens.
type TokenCodec interface {
	// Issue creates a signed token addressing the session.
	Issue(session *domain.Session) (string, error)
	// Decode validates a token and returns the session ID it addresses.
	Decode(token string) (string, error)
}
