package middleware

import (
	"log"
	"strings"

	"rentwheels/internal/services"

	"github.com/gofiber/fiber/v2"
)

// identityKey is the Locals key holding the VerifiedIdentity. Unexported
// so handlers go through IdentityFromContext and never read a raw claim.
const identityKey = "verified_identity"

// unauthorizedMessage is the fixed body for every 401 on protected routes.
const unauthorizedMessage = "unauthorized access"

// AuthRequired is a Fiber middleware that verifies the Bearer token and
// injects the verified identity into the request context. No handler
// behind it runs without one, so ownership checks can assume it exists.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": unauthorizedMessage,
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": unauthorizedMessage,
			})
		}

		identity, err := authService.VerifyToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": unauthorizedMessage,
			})
		}

		c.Locals(identityKey, *identity)
		return c.Next()
	}
}

// IdentityFromContext returns the verified identity injected by
// AuthRequired. The second return is false on routes outside the
// middleware, which is a programming error on a write path.
func IdentityFromContext(c *fiber.Ctx) (services.VerifiedIdentity, bool) {
	identity, ok := c.Locals(identityKey).(services.VerifiedIdentity)
	return identity, ok
}
