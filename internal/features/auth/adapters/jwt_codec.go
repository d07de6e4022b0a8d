package adapters

import (
	"fmt"

	"courier-connect/internal/features/auth/domain"

	"github.com/golang-jwt/jwt/v4"
)

// JWTCodec implements ports.TokenCodec with HS256-signed tokens carrying the
// session ID as subject.
type JWTCodec struct {
	signingKey []byte
}

// NewJWTCodec creates a JWTCodec with the given signing key.
func NewJWTCodec(signingKey string) *JWTCodec {
	return &JWTCodec{
		signingKey: []byte(signingKey),
	}
}

// Issue creates a signed token addressing the session.
func (c *JWTCodec) Issue(session *domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "courier-connect",
		Subject:   session.ID,
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Decode validates a token and returns the session ID it addresses.
func (c *JWTCodec) Decode(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.signingKey, nil
	})
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}

	return claims.Subject, nil
}
