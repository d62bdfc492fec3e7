package handlers

import (
	"context"
	"log"

	"app/database"
	"app/models"
	"app/store"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleRecordWaste records one waste entry.
func HandleRecordWaste(c *fiber.Ctx) error {
	ctx := context.Background()

	var input models.RecordWasteRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "product_id is required"})
	}
	if input.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "quantity must be a positive integer"})
	}
	wasteDate, err := parseDate(input.WasteDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "waste_date must be YYYY-MM-DD"})
	}
	slot, err := models.ParseTimeSlot(input.TimeSlot)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "time_slot must be one of Breakfast, Lunch, Afternoon"})
	}

	waste := store.NewWasteStore(database.GetDB())
	entry, err := waste.Record(ctx, models.WasteEntry{
		ProductID: input.ProductID,
		WasteDate: wasteDate,
		TimeSlot:  slot,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
	})
	if err != nil {
		log.Printf("Error recording waste: %v", err)
		return errorResponse(c, err, "Failed to record waste entry")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": entry})
}

// HandleListWaste lists waste entries, newest first.
func HandleListWaste(c *fiber.Ctx) error {
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)

	waste := store.NewWasteStore(database.GetDB())
	items, total, err := waste.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing waste entries: %v", err)
		return errorResponse(c, err, "Failed to retrieve waste entries")
	}

	response := models.PaginatedWasteResponse{
		Data:       items,
		Pagination: *utils.CreatePagination(total, page, pageSize),
	}
	return c.JSON(fiber.Map{"status": "success", "data": response})
}
