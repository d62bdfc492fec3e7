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

// HandleCreateProduct adds a product to the catalog.
func HandleCreateProduct(c *fiber.Ctx) error {
	ctx := context.Background()

	var input models.CreateProductRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Product name is required"})
	}
	if input.CostPrice.IsNegative() || input.SellPrice.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Prices must not be negative"})
	}

	products := store.NewProductStore(database.GetDB())
	product, err := products.Create(ctx, input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, err, "Failed to create product")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": product})
}

// HandleListProducts returns a page of the catalog.
func HandleListProducts(c *fiber.Ctx) error {
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)

	products := store.NewProductStore(database.GetDB())
	items, total, err := products.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return errorResponse(c, err, "Failed to retrieve products")
	}

	response := models.PaginatedProductsResponse{
		Data:       items,
		Pagination: *utils.CreatePagination(total, page, pageSize),
	}
	return c.JSON(fiber.Map{"status": "success", "data": response})
}

// HandleGetProductByID retrieves a single product.
func HandleGetProductByID(c *fiber.Ctx) error {
	ctx := context.Background()

	products := store.NewProductStore(database.GetDB())
	product, err := products.GetByID(ctx, c.Params("productId"))
	if err != nil {
		log.Printf("Error getting product: %v", err)
		return errorResponse(c, err, "Product not found")
	}

	return c.JSON(fiber.Map{"status": "success", "data": product})
}

// HandleUpdateProduct applies partial updates to a product. Deactivating a
// product stops it from appearing in future forecasts; committed plans keep
// their rows.
func HandleUpdateProduct(c *fiber.Ctx) error {
	ctx := context.Background()

	var input models.UpdateProductRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.CostPrice != nil && input.CostPrice.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cost price must not be negative"})
	}
	if input.SellPrice != nil && input.SellPrice.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Sell price must not be negative"})
	}

	products := store.NewProductStore(database.GetDB())
	product, err := products.Update(ctx, c.Params("productId"), input)
	if err != nil {
		log.Printf("Error updating product: %v", err)
		return errorResponse(c, err, "Failed to update product")
	}

	return c.JSON(fiber.Map{"status": "success", "data": product})
}
