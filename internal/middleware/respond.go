package middleware

import "github.com/gofiber/fiber/v3"

// Err writes the flat {error} shape the tool pages display verbatim.
func Err(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ErrDetails writes {error, details}. details carries the best-effort
// human-readable cause; stack traces never leave the process.
func ErrDetails(c fiber.Ctx, status int, message, details string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   message,
		"details": details,
	})
}
