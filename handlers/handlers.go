package handlers

import (
	"errors"
	"time"

	"app/forecast"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD calendar date. Dates carry no time of day.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// storageStatus maps engine errors onto HTTP statuses: duplicates are 409,
// missing records 404, storage faults 503 (retryable), the rest 500.
func storageStatus(err error) int {
	switch {
	case errors.Is(err, forecast.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, forecast.ErrDuplicateObservation):
		return fiber.StatusConflict
	case errors.Is(err, forecast.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, forecast.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error, message string) error {
	return c.Status(storageStatus(err)).JSON(fiber.Map{"status": "error", "message": message})
}
