package store

import (
	"context"
	"fmt"
	"time"

	"app/forecast"
	"app/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PlanStore persists committed production plans.
type PlanStore struct {
	db *pgxpool.Pool
}

func NewPlanStore(db *pgxpool.Pool) *PlanStore {
	return &PlanStore{db: db}
}

// ReplacePlan swaps the full entry set for a date. The delete and the
// inserts run in one transaction, so a failing commit leaves the previous
// plan for that date intact rather than half-written.
func (s *PlanStore) ReplacePlan(ctx context.Context, date time.Time, entries []models.ProductionPlanEntry) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin plan replace: %v", forecast.ErrStorageUnavailable, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM production_plan_entries WHERE plan_date = $1`, date); err != nil {
		return fmt.Errorf("%w: clear prior plan: %v", forecast.ErrStorageUnavailable, err)
	}

	insertQuery := `
		INSERT INTO production_plan_entries (plan_date, product_id, time_slot, forecast_quantity, adjusted_quantity)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, e := range entries {
		if _, err := tx.Exec(ctx, insertQuery, e.PlanDate, e.ProductID, e.TimeSlot, e.ForecastQuantity, e.AdjustedQuantity); err != nil {
			return fmt.Errorf("%w: insert plan entry: %v", forecast.ErrStorageUnavailable, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit plan replace: %v", forecast.ErrStorageUnavailable, err)
	}
	return nil
}

// PlanForDate reads the committed plan for a date in display order.
func (s *PlanStore) PlanForDate(ctx context.Context, date time.Time) ([]models.ProductionPlanEntry, error) {
	// The JOIN is for ordering by product name only; entries survive
	// product deactivation.
	query := `
		SELECT e.plan_date, e.product_id, e.time_slot, e.forecast_quantity, e.adjusted_quantity
		FROM production_plan_entries e
		JOIN products p ON e.product_id = p.id
		WHERE e.plan_date = $1
		ORDER BY p.name ASC, e.time_slot ASC
	`
	rows, err := s.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: read plan: %v", forecast.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	entries := []models.ProductionPlanEntry{}
	for rows.Next() {
		var e models.ProductionPlanEntry
		if err := rows.Scan(&e.PlanDate, &e.ProductID, &e.TimeSlot, &e.ForecastQuantity, &e.AdjustedQuantity); err != nil {
			return nil, fmt.Errorf("%w: scan plan entry: %v", forecast.ErrStorageUnavailable, err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: read plan: %v", forecast.ErrStorageUnavailable, rows.Err())
	}
	return entries, nil
}

// CountForDate returns how many plan rows exist for a date, for the
// dashboard's coverage KPI.
func (s *PlanStore) CountForDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM production_plan_entries WHERE plan_date = $1`
	if err := s.db.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count plan entries: %v", forecast.ErrStorageUnavailable, err)
	}
	return count, nil
}
