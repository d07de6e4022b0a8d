package handler

import (
	"net/http"
	"strings"

	"courier-connect/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireSession returns middleware that resolves the bearer token into the
// authenticated identity and stores it in the request locals as "identity"
// (and its ID as "userID") for downstream handlers.
func RequireSession(sessions ports.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Message: "Missing bearer token",
				RayID:   rayID(c),
			})
		}

		identity, err := sessions.Current(c.Context(), token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Message: "Invalid or expired session",
				RayID:   rayID(c),
			})
		}

		c.Locals("identity", identity)
		c.Locals("userID", identity.ID)
		return c.Next()
	}
}
