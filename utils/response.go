package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ErrorDetailResponse carries the technical detail alongside the user-facing
// message, matching the {error, details} shape of upstream failures.
func ErrorDetailResponse(c *fiber.Ctx, status int, message, details string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   message,
		"details": details,
	})
}
