package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// AdminToken requires "Authorization: Bearer <token>". An empty token
// disables the check.
func AdminToken(token string) fiber.Handler {
	if token == "" {
		return func(c fiber.Ctx) error { return c.Next() }
	}
	want := []byte(token)

	return func(c fiber.Ctx) error {
		parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}
		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(parts[1])), want) != 1 {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}
