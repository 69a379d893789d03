package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// DefaultAPIVersion is assumed when a request carries no version header.
const DefaultAPIVersion = "1.0.0"

// VersionMiddleware resolves the X-Api-Version request header, normalizes
// short aliases, stores the result in the request context, and echoes it on
// the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", DefaultAPIVersion)

		switch version {
		case "1", "1.0":
			version = DefaultAPIVersion
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
