package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/forecast"
	"app/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// SalesStore is the sales ledger accessor. The forecast engine only reads
// from it; writes come from manual entry.
type SalesStore struct {
	db *pgxpool.Pool
}

func NewSalesStore(db *pgxpool.Pool) *SalesStore {
	return &SalesStore{db: db}
}

const recordInsertQuery = `
	INSERT INTO sales_observations (product_id, sale_date, time_slot, quantity_sold)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at
`

const recordUpsertQuery = `
	INSERT INTO sales_observations (product_id, sale_date, time_slot, quantity_sold)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (product_id, sale_date, time_slot)
	DO UPDATE SET quantity_sold = EXCLUDED.quantity_sold, updated_at = NOW()
	RETURNING id, created_at, updated_at
`

// recordQuery picks the write for one observation: a plain insert that the
// unique constraint rejects on a duplicate triple, or an upsert that
// overwrites the quantity in place when the caller asked for an update.
func recordQuery(allowUpdate bool) string {
	if allowUpdate {
		return recordUpsertQuery
	}
	return recordInsertQuery
}

// recordError translates a failed ledger write: a unique-constraint hit
// means the (product, date, slot) triple already exists; anything else is a
// storage fault.
func recordError(err error, obs models.SalesObservation) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w for (%s, %s, %s)",
			forecast.ErrDuplicateObservation, obs.ProductID, obs.SaleDate.Format("2006-01-02"), obs.TimeSlot)
	}
	return fmt.Errorf("%w: record observation: %v", forecast.ErrStorageUnavailable, err)
}

// Record inserts one observation. The ledger is unique on
// (product, date, slot); a second write for the same triple fails with
// ErrDuplicateObservation unless allowUpdate is set.
func (s *SalesStore) Record(ctx context.Context, obs models.SalesObservation, allowUpdate bool) (models.SalesObservation, error) {
	err := s.db.QueryRow(ctx, recordQuery(allowUpdate), obs.ProductID, obs.SaleDate, obs.TimeSlot, obs.QuantitySold).
		Scan(&obs.ID, &obs.CreatedAt, &obs.UpdatedAt)
	if err != nil {
		return models.SalesObservation{}, recordError(err, obs)
	}
	return obs, nil
}

// ObservationsInRange fetches every observation with a sale date in
// [from, to]. The calculator filters by product, slot and weekday in memory.
func (s *SalesStore) ObservationsInRange(ctx context.Context, from, to time.Time) ([]models.SalesObservation, error) {
	query := `
		SELECT id, product_id, sale_date, time_slot, quantity_sold, created_at, updated_at
		FROM sales_observations
		WHERE sale_date BETWEEN $1 AND $2
		ORDER BY sale_date DESC
	`
	rows, err := s.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: query observations: %v", forecast.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	return scanObservations(rows)
}

// List returns a page of the ledger, newest first, optionally scoped to one
// product.
func (s *SalesStore) List(ctx context.Context, productID string, page, pageSize int) ([]models.SalesObservation, int, error) {
	page, pageSize = clampPage(page, pageSize)
	offset := (page - 1) * pageSize

	query := `
		SELECT id, product_id, sale_date, time_slot, quantity_sold, created_at, updated_at
		FROM sales_observations
	`
	countQuery := `SELECT COUNT(*) FROM sales_observations`
	countArgs := []interface{}{}
	args := []interface{}{}
	if productID != "" {
		query += ` WHERE product_id = $1`
		countQuery += ` WHERE product_id = $1`
		countArgs = append(countArgs, productID)
		args = append(args, productID)
	}
	query += fmt.Sprintf(` ORDER BY sale_date DESC, time_slot ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list observations: %v", forecast.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	observations, err := scanObservations(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: count observations: %v", forecast.ErrStorageUnavailable, err)
	}
	return observations, total, nil
}

// QuantitySoldOn sums the units sold on one date, for the dashboard.
func (s *SalesStore) QuantitySoldOn(ctx context.Context, date time.Time) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(quantity_sold), 0) FROM sales_observations WHERE sale_date = $1`
	if err := s.db.QueryRow(ctx, query, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: sum sales: %v", forecast.ErrStorageUnavailable, err)
	}
	return total, nil
}

func scanObservations(rows pgx.Rows) ([]models.SalesObservation, error) {
	observations := []models.SalesObservation{}
	for rows.Next() {
		var obs models.SalesObservation
		if err := rows.Scan(&obs.ID, &obs.ProductID, &obs.SaleDate, &obs.TimeSlot, &obs.QuantitySold, &obs.CreatedAt, &obs.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan observation: %v", forecast.ErrStorageUnavailable, err)
		}
		observations = append(observations, obs)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: read observations: %v", forecast.ErrStorageUnavailable, rows.Err())
	}
	return observations, nil
}
