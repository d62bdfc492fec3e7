package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Core Models ---

// Product is an item the shop produces and sells.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SalesObservation is one manually entered sales figure for a product in a
// time slot on a calendar date. At most one row exists per
// (product, date, slot).
type SalesObservation struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	SaleDate     time.Time `json:"sale_date"`
	TimeSlot     TimeSlot  `json:"time_slot"`
	QuantitySold int       `json:"quantity_sold"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WasteEntry records product thrown away at the end of a slot.
type WasteEntry struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	WasteDate time.Time `json:"waste_date"`
	TimeSlot  TimeSlot  `json:"time_slot"`
	Quantity  int       `json:"quantity"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductionPlanEntry is one committed row of the production plan for a date.
// AdjustedQuantity is set only when the user overrode the computed forecast.
type ProductionPlanEntry struct {
	PlanDate         time.Time `json:"plan_date"`
	ProductID        string    `json:"product_id"`
	TimeSlot         TimeSlot  `json:"time_slot"`
	ForecastQuantity int       `json:"forecast_quantity"`
	AdjustedQuantity *int      `json:"adjusted_quantity,omitempty"`
}

// FinalQuantity is the amount production should actually make.
func (e ProductionPlanEntry) FinalQuantity() int {
	if e.AdjustedQuantity != nil {
		return *e.AdjustedQuantity
	}
	return e.ForecastQuantity
}

// --- API Request/Response Structs ---

// CreateProductRequest defines the body for creating a product.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
}

// UpdateProductRequest defines the body for updating a product.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	CostPrice *decimal.Decimal `json:"cost_price,omitempty"`
	SellPrice *decimal.Decimal `json:"sell_price,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

// RecordSaleRequest defines the body for recording a sales observation.
type RecordSaleRequest struct {
	ProductID string `json:"product_id"`
	SaleDate  string `json:"sale_date"`
	TimeSlot  string `json:"time_slot"`
	Quantity  int    `json:"quantity"`
	// Update must be set to overwrite an existing observation for the
	// same (product, date, slot); otherwise the write is rejected.
	Update bool `json:"update,omitempty"`
}

// RecordWasteRequest defines the body for recording a waste entry.
type RecordWasteRequest struct {
	ProductID string  `json:"product_id"`
	WasteDate string  `json:"waste_date"`
	TimeSlot  string  `json:"time_slot"`
	Quantity  int     `json:"quantity"`
	Reason    *string `json:"reason,omitempty"`
}

// CommitPlanItem is one row of a plan commit. Override is kept as a raw
// string: an unparsable or negative value falls back to the forecast
// quantity instead of rejecting the commit.
type CommitPlanItem struct {
	ProductID        string  `json:"product_id"`
	TimeSlot         string  `json:"time_slot"`
	ForecastQuantity int     `json:"forecast_quantity"`
	Override         *string `json:"override,omitempty"`
}

// CommitPlanRequest defines the body for committing a production plan.
type CommitPlanRequest struct {
	Items []CommitPlanItem `json:"items"`
}

// WasteCostSummary is the dashboard's cost-of-waste KPI.
type WasteCostSummary struct {
	TotalQuantity int             `json:"total_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// DashboardSummary defines the structure for the planning dashboard summary.
type DashboardSummary struct {
	SalesQuantityToday int              `json:"sales_quantity_today"`
	WasteLast7Days     WasteCostSummary `json:"waste_last_7_days"`
	PlanEntriesForDate int              `json:"plan_entries_for_date"`
}

// --- Paginated Responses ---

// Pagination details for paginated responses.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// PaginatedProductsResponse for the product catalog listing.
type PaginatedProductsResponse struct {
	Data       []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PaginatedSalesResponse for sales observation history.
type PaginatedSalesResponse struct {
	Data       []SalesObservation `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// PaginatedWasteResponse for waste entries.
type PaginatedWasteResponse struct {
	Data       []WasteEntry `json:"data"`
	Pagination Pagination   `json:"pagination"`
}
