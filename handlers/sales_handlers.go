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

// HandleRecordSale records one sales observation. The ledger holds at most
// one row per (product, date, slot); a second write for the same triple is
// rejected with 409 unless the request sets "update".
func HandleRecordSale(c *fiber.Ctx) error {
	ctx := context.Background()

	var input models.RecordSaleRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "product_id is required"})
	}
	if input.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "quantity must be a positive integer"})
	}
	saleDate, err := parseDate(input.SaleDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "sale_date must be YYYY-MM-DD"})
	}
	slot, err := models.ParseTimeSlot(input.TimeSlot)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "time_slot must be one of Breakfast, Lunch, Afternoon"})
	}

	sales := store.NewSalesStore(database.GetDB())
	obs, err := sales.Record(ctx, models.SalesObservation{
		ProductID:    input.ProductID,
		SaleDate:     saleDate,
		TimeSlot:     slot,
		QuantitySold: input.Quantity,
	}, input.Update)
	if err != nil {
		log.Printf("Error recording sale: %v", err)
		return errorResponse(c, err, "Failed to record sales observation")
	}

	status := fiber.StatusCreated
	if input.Update {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{"status": "success", "data": obs})
}

// HandleListSales lists sales observations, newest first, optionally
// filtered by product.
func HandleListSales(c *fiber.Ctx) error {
	ctx := context.Background()

	productID := c.Query("product_id")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)

	sales := store.NewSalesStore(database.GetDB())
	items, total, err := sales.List(ctx, productID, page, pageSize)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		return errorResponse(c, err, "Failed to retrieve sales observations")
	}

	response := models.PaginatedSalesResponse{
		Data:       items,
		Pagination: *utils.CreatePagination(total, page, pageSize),
	}
	return c.JSON(fiber.Map{"status": "success", "data": response})
}
