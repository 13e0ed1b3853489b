package middleware

import (
	"errors"
	"log"
	"strings"

	"staffdir/internal/metrics"
	"staffdir/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	localUserID = "user_id"
	localEmail  = "email"
)

// TokenVerifier is the part of the token service the gate needs.
type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// AuthRequired is a Fiber middleware that only lets requests with a valid bearer
// token through. A missing header or token is answered with 403; an invalid or
// expired token with 401 and one generic message for both cases.
func AuthRequired(verifier TokenVerifier, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Expected format: "Bearer <token>"
		parts := strings.Fields(c.Get(fiber.HeaderAuthorization))
		if len(parts) < 2 {
			m.ObserveTokenRejection("missing")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "No token provided, access denied.",
			})
		}

		var claims *services.Claims
		err := errors.New("unsupported authorization scheme")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			claims, err = verifier.Verify(parts[1])
		}
		if err != nil {
			reason := "invalid"
			if errors.Is(err, services.ErrTokenExpired) {
				reason = "expired"
			}
			m.ObserveTokenRejection(reason)
			log.Printf("Bearer token rejected (%s) for %s %s", reason, c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token.",
			})
		}

		// Store the caller identity for subsequent handlers
		c.Locals(localUserID, claims.UserID)
		c.Locals(localEmail, claims.Email)

		return c.Next()
	}
}

// UserIDFromContext returns the authenticated caller's id set by AuthRequired.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(localUserID).(string)
	return id, ok && id != ""
}
