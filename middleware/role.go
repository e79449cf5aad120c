package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that checks the authenticated user's role claim.
// Declarative per-route policy; runs after JWTMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return ErrorJson(c, fiber.StatusUnauthorized, KindUnauthorized, "Unauthorized: role claim not found")
		}

		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}

		return ErrorJson(c, fiber.StatusForbidden, KindForbidden, "You do not have permission to access this resource!")
	}
}
