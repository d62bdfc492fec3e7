package store

import (
	"context"
	"fmt"
	"time"

	"app/forecast"
	"app/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// WasteStore is the waste ledger accessor. Waste shares the time-slot
// vocabulary with sales but never feeds the forecast average; it only
// supplies cost-of-waste context.
type WasteStore struct {
	db *pgxpool.Pool
}

func NewWasteStore(db *pgxpool.Pool) *WasteStore {
	return &WasteStore{db: db}
}

// Record inserts one waste entry.
func (s *WasteStore) Record(ctx context.Context, entry models.WasteEntry) (models.WasteEntry, error) {
	query := `
		INSERT INTO waste_entries (product_id, waste_date, time_slot, quantity, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := s.db.QueryRow(ctx, query, entry.ProductID, entry.WasteDate, entry.TimeSlot, entry.Quantity, entry.Reason).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return models.WasteEntry{}, fmt.Errorf("%w: record waste entry: %v", forecast.ErrStorageUnavailable, err)
	}
	return entry, nil
}

// List returns a page of waste entries, newest first.
func (s *WasteStore) List(ctx context.Context, page, pageSize int) ([]models.WasteEntry, int, error) {
	page, pageSize = clampPage(page, pageSize)
	offset := (page - 1) * pageSize
	query := `
		SELECT id, product_id, waste_date, time_slot, quantity, reason, created_at
		FROM waste_entries
		ORDER BY waste_date DESC, time_slot ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list waste entries: %v", forecast.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	entries := []models.WasteEntry{}
	for rows.Next() {
		var e models.WasteEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.WasteDate, &e.TimeSlot, &e.Quantity, &e.Reason, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("%w: scan waste entry: %v", forecast.ErrStorageUnavailable, err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("%w: read waste entries: %v", forecast.ErrStorageUnavailable, rows.Err())
	}

	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM waste_entries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: count waste entries: %v", forecast.ErrStorageUnavailable, err)
	}
	return entries, total, nil
}

// CostSummary values the waste in [from, to] at each product's cost price.
func (s *WasteStore) CostSummary(ctx context.Context, from, to time.Time) (models.WasteCostSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(w.quantity), 0),
			COALESCE(SUM(w.quantity * p.cost_price), 0)::text
		FROM waste_entries w
		JOIN products p ON w.product_id = p.id
		WHERE w.waste_date BETWEEN $1 AND $2
	`
	var summary models.WasteCostSummary
	var cost string
	if err := s.db.QueryRow(ctx, query, from, to).Scan(&summary.TotalQuantity, &cost); err != nil {
		return models.WasteCostSummary{}, fmt.Errorf("%w: waste cost summary: %v", forecast.ErrStorageUnavailable, err)
	}
	total, err := decimal.NewFromString(cost)
	if err != nil {
		return models.WasteCostSummary{}, fmt.Errorf("parse waste cost: %w", err)
	}
	summary.TotalCost = total
	return summary, nil
}
