package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pmportal/internship-matcher/internal/repositories"
	"pmportal/internship-matcher/internal/services"
)

// statusError maps service-layer failures to distinct HTTP responses so
// callers can render actionable messages.
func statusError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrUnknownStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrInternshipClosed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fallback,
		})
	}
}
