package handlers

import (
	"context"
	"log"

	"app/database"
	"app/forecast"
	"app/models"
	"app/store"

	"github.com/gofiber/fiber/v2"
)

// HandleCommitPlan commits the production plan for the date in the path,
// replacing any plan previously committed for that date. An empty item set
// is valid and clears the plan. Invalid overrides fall back to the forecast
// quantity; they never block the commit.
func HandleCommitPlan(c *fiber.Ctx) error {
	ctx := context.Background()

	planDate, err := parseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Plan date must be YYYY-MM-DD"})
	}

	var input models.CommitPlanRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	items := make([]forecast.PlanItem, 0, len(input.Items))
	for _, it := range input.Items {
		slot, err := models.ParseTimeSlot(it.TimeSlot)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "time_slot must be one of Breakfast, Lunch, Afternoon"})
		}
		items = append(items, forecast.PlanItem{
			ProductID:        it.ProductID,
			TimeSlot:         slot,
			ForecastQuantity: it.ForecastQuantity,
			Override:         forecast.ParseOverride(it.Override),
		})
	}

	planner := forecast.NewPlanner(store.NewPlanStore(database.GetDB()))
	entries, err := planner.Commit(ctx, planDate, items)
	if err != nil {
		log.Printf("Error committing plan for %s: %v", planDate.Format(dateLayout), err)
		return errorResponse(c, err, "Failed to commit production plan")
	}

	return c.JSON(fiber.Map{"status": "success", "data": entries})
}

// HandleGetPlan returns the committed plan for a date, for the printable
// production sheet.
func HandleGetPlan(c *fiber.Ctx) error {
	ctx := context.Background()

	planDate, err := parseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Plan date must be YYYY-MM-DD"})
	}

	planner := forecast.NewPlanner(store.NewPlanStore(database.GetDB()))
	entries, err := planner.PlanForDate(ctx, planDate)
	if err != nil {
		log.Printf("Error reading plan for %s: %v", planDate.Format(dateLayout), err)
		return errorResponse(c, err, "Failed to retrieve production plan")
	}

	return c.JSON(fiber.Map{"status": "success", "data": entries})
}
