package store

import (
	"context"
	"errors"
	"fmt"

	"app/forecast"
	"app/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ProductStore reads and writes the product catalog.
type ProductStore struct {
	db *pgxpool.Pool
}

func NewProductStore(db *pgxpool.Pool) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, cost_price::text, sell_price::text, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	var cost, sell string
	if err := row.Scan(&p.ID, &p.Name, &cost, &sell, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	var err error
	if p.CostPrice, err = decimal.NewFromString(cost); err != nil {
		return p, fmt.Errorf("parse cost price: %w", err)
	}
	if p.SellPrice, err = decimal.NewFromString(sell); err != nil {
		return p, fmt.Errorf("parse sell price: %w", err)
	}
	return p, nil
}

// Create inserts a new active product.
func (s *ProductStore) Create(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	query := `
		INSERT INTO products (name, cost_price, sell_price, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING ` + productColumns
	p, err := scanProduct(s.db.QueryRow(ctx, query, req.Name, req.CostPrice, req.SellPrice))
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: create product: %v", forecast.ErrStorageUnavailable, err)
	}
	return p, nil
}

// GetByID fetches one product.
func (s *ProductStore) GetByID(ctx context.Context, id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(s.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, fmt.Errorf("%w: product %s", forecast.ErrNotFound, id)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: get product: %v", forecast.ErrStorageUnavailable, err)
	}
	return p, nil
}

// Update applies the non-nil fields of req to a product.
func (s *ProductStore) Update(ctx context.Context, id string, req models.UpdateProductRequest) (models.Product, error) {
	query := `
		UPDATE products
		SET name = COALESCE($2, name),
		    cost_price = COALESCE($3, cost_price),
		    sell_price = COALESCE($4, sell_price),
		    is_active = COALESCE($5, is_active),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns
	p, err := scanProduct(s.db.QueryRow(ctx, query, id, req.Name, req.CostPrice, req.SellPrice, req.IsActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, fmt.Errorf("%w: product %s", forecast.ErrNotFound, id)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: update product: %v", forecast.ErrStorageUnavailable, err)
	}
	return p, nil
}

// List returns a page of the catalog, active products first.
func (s *ProductStore) List(ctx context.Context, page, pageSize int) ([]models.Product, int, error) {
	page, pageSize = clampPage(page, pageSize)
	offset := (page - 1) * pageSize
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY is_active DESC, name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list products: %v", forecast.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scan product: %v", forecast.ErrStorageUnavailable, err)
		}
		products = append(products, p)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("%w: list products: %v", forecast.ErrStorageUnavailable, rows.Err())
	}

	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: count products: %v", forecast.ErrStorageUnavailable, err)
	}
	return products, total, nil
}

// ActiveProducts returns the catalog rows the forecast may plan for. Fetched
// fresh on every calculation; a product deactivated since the last run drops
// out here.
func (s *ProductStore) ActiveProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE
		ORDER BY name ASC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list active products: %v", forecast.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan product: %v", forecast.ErrStorageUnavailable, err)
		}
		products = append(products, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: list active products: %v", forecast.ErrStorageUnavailable, rows.Err())
	}
	return products, nil
}
