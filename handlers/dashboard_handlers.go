package handlers

import (
	"context"
	"log"
	"time"

	"app/database"
	"app/forecast"
	"app/models"
	"app/store"

	"github.com/gofiber/fiber/v2"
)

// HandleGetDashboardSummary fetches the planning dashboard KPIs: units sold
// today, cost of waste over the last seven days, and how many plan rows are
// committed for tomorrow.
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	ctx := context.Background()
	db := database.GetDB()

	today := forecast.Midnight(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var summary models.DashboardSummary

	sales := store.NewSalesStore(db)
	sold, err := sales.QuantitySoldOn(ctx, today)
	if err != nil {
		log.Printf("Error fetching sales total: %v", err)
		return errorResponse(c, err, "Failed to fetch sales total")
	}
	summary.SalesQuantityToday = sold

	waste := store.NewWasteStore(db)
	wasteSummary, err := waste.CostSummary(ctx, today.AddDate(0, 0, -7), today)
	if err != nil {
		log.Printf("Error fetching waste summary: %v", err)
		return errorResponse(c, err, "Failed to fetch waste summary")
	}
	summary.WasteLast7Days = wasteSummary

	plans := store.NewPlanStore(db)
	count, err := plans.CountForDate(ctx, tomorrow)
	if err != nil {
		log.Printf("Error counting plan entries: %v", err)
		return errorResponse(c, err, "Failed to count plan entries")
	}
	summary.PlanEntriesForDate = count

	return c.JSON(fiber.Map{"status": "success", "data": summary})
}
