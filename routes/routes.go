package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Product Catalog ---
	products := api.Group("/products")
	products.Get("/", handlers.HandleListProducts)
	products.Post("/", handlers.HandleCreateProduct)
	products.Get("/:productId", handlers.HandleGetProductByID)
	products.Put("/:productId", handlers.HandleUpdateProduct)

	// --- Sales Ledger ---
	sales := api.Group("/sales")
	sales.Get("/", handlers.HandleListSales)
	sales.Post("/", handlers.HandleRecordSale)

	// --- Waste Ledger ---
	waste := api.Group("/waste")
	waste.Get("/", handlers.HandleListWaste)
	waste.Post("/", handlers.HandleRecordWaste)

	// --- Forecast & Production Plans ---
	api.Get("/forecast", handlers.HandleCalculateForecast)
	plans := api.Group("/plans")
	plans.Get("/:date", handlers.HandleGetPlan)
	plans.Put("/:date", handlers.HandleCommitPlan)

	// --- Dashboard ---
	api.Get("/dashboard/summary", handlers.HandleGetDashboardSummary)
}
