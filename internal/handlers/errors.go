package handlers

import (
	"errors"
	"strings"

	"github.com/automatamexico/Restaurante/internal/services"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps service errors to HTTP statuses: 409 for lifecycle
// locks, 503 when a pre-write read could not reach the backend, 400 for
// validation, 404 for missing records.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrSettledOrderLocked),
		errors.Is(err, services.ErrOrderClosed):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrBackendUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrAmountExceedsDue),
		errors.Is(err, services.ErrInsufficientTendered),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyOrder):
		return fiber.StatusBadRequest
	case strings.Contains(err.Error(), "not found"):
		return fiber.StatusNotFound
	case strings.Contains(err.Error(), "not available"),
		strings.Contains(err.Error(), "invalid"):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
