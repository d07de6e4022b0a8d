package service

import (
	"context"
	"fmt"
	"time"

	"courier-connect/internal/features/auth/domain"
	"courier-connect/internal/features/auth/ports"

	"github.com/google/uuid"
)

// SessionServiceImpl implements ports.SessionService.
type SessionServiceImpl struct {
	authenticator ports.Authenticator
	sessions      ports.SessionRepository
	tokens        ports.TokenCodec
	sessionTTL    time.Duration
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(
	authenticator ports.Authenticator,
	sessions ports.SessionRepository,
	tokens ports.TokenCodec,
	sessionTTL time.Duration,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		authenticator: authenticator,
		sessions:      sessions,
		tokens:        tokens,
		sessionTTL:    sessionTTL,
	}
}

// Login authenticates the credentials and opens a session.
func (s *SessionServiceImpl) Login(ctx context.Context, creds domain.Credentials) (*domain.Identity, string, error) {
	if err := creds.Validate(); err != nil {
		return nil, "", err
	}

	identity, err := s.authenticator.Authenticate(ctx, creds)
	if err != nil {
		return nil, "", fmt.Errorf("service: authentication failed: %w", err)
	}

	token, err := s.openSession(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	return identity, token, nil
}

// Register creates a new identity and opens a session for it.
func (s *SessionServiceImpl) Register(ctx context.Context, reg domain.Registration) (*domain.Identity, string, error) {
	if err := reg.Validate(); err != nil {
		return nil, "", err
	}

	identity, err := s.authenticator.Register(ctx, reg)
	if err != nil {
		return nil, "", fmt.Errorf("service: registration failed: %w", err)
	}

	token, err := s.openSession(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	return identity, token, nil
}

// Logout destroys the session addressed by the token. Unknown tokens are
// rejected, already-deleted sessions are not an error.
func (s *SessionServiceImpl) Logout(ctx context.Context, token string) error {
	sessionID, err := s.tokens.Decode(token)
	if err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to delete session: %w", err)
	}

	return nil
}

// Current resolves the token to the authenticated identity.
func (s *SessionServiceImpl) Current(ctx context.Context, token string) (*domain.Identity, error) {
	sessionID, err := s.tokens.Decode(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}

	return &session.Identity, nil
}

// openSession persists a fresh session for the identity and issues its token.
func (s *SessionServiceImpl) openSession(ctx context.Context, identity *domain.Identity) (string, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Identity:  *identity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("service: failed to save session: %w", err)
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		return "", fmt.Errorf("service: failed to issue token: %w", err)
	}

	return token, nil
}
