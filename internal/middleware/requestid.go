package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// RequestIDKey is the Locals key under which the request ID is stored.
const RequestIDKey = "requestId"

// NewRequestID assigns each request a UUID (or propagates the caller's
// X-Request-ID) for log correlation.
func NewRequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(RequestIDKey, rid)
		c.Set("X-Request-ID", rid)
		return c.Next()
	}
}
