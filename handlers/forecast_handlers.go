package handlers

import (
	"context"
	"log"
	"time"

	"app/config"
	"app/database"
	"app/forecast"
	"app/store"

	"github.com/gofiber/fiber/v2"
)

// HandleCalculateForecast runs the demand forecast for a target date. With
// no date parameter it forecasts tomorrow. An empty result (no active
// products, or no history in the window) is a 200 with an informational
// message, not an error; only a storage fault produces an error status.
func HandleCalculateForecast(c *fiber.Ctx) error {
	ctx := context.Background()

	target := time.Now().AddDate(0, 0, 1)
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "date must be YYYY-MM-DD"})
		}
		target = parsed
	}

	db := database.GetDB()
	svc := forecast.NewService(
		store.NewProductStore(db),
		store.NewSalesStore(db),
		config.AppConfig.LookbackDays,
		config.AppConfig.MatchWeeks,
	)

	result, err := svc.Forecast(ctx, target)
	if err != nil {
		log.Printf("Error calculating forecast for %s: %v", target.Format(dateLayout), err)
		return errorResponse(c, err, "Failed to calculate forecast")
	}

	return c.JSON(fiber.Map{"status": "success", "data": result})
}
