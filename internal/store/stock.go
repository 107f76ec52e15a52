package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"brewdash/m/domain"
)

// Inventory returns all current stock rows with their product's display name
// and unit. Stock is current state, never period-filtered.
func (s *Store) Inventory(ctx context.Context) ([]domain.StockLevel, error) {
	var rows []domain.StockLevel
	err := s.db.SelectContext(ctx, &rows, `SELECT s.product_id, s.quantity, s.created_at, s.updated_at,
            p.name AS product_name, p.unit_of_measure AS product_unit
        FROM stock s
        LEFT JOIN products p ON p.id = s.product_id
        ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

// UpsertStock replaces the quantity for a product, creating the row if it is
// somehow absent. Conflict key is the product ID.
func (s *Store) UpsertStock(ctx context.Context, productID string, quantity decimal.Decimal) (*domain.StockLevel, error) {
	_, err := s.db.ExecContext(ctx, `INSERT INTO stock (product_id, quantity) VALUES ($1, $2)
        ON CONFLICT(product_id) DO UPDATE SET quantity = excluded.quantity, updated_at = CURRENT_TIMESTAMP`,
		productID, quantity)
	if err != nil {
		return nil, unavailable(err)
	}

	var row domain.StockLevel
	if err := s.db.GetContext(ctx, &row, `SELECT product_id, quantity, created_at, updated_at FROM stock WHERE product_id = $1`, productID); err != nil {
		return nil, unavailable(err)
	}
	return &row, nil
}

// StockQuantity reads the current quantity on hand for one product.
func (s *Store) StockQuantity(ctx context.Context, productID string) (decimal.Decimal, error) {
	var qty decimal.Decimal
	err := s.db.GetContext(ctx, &qty, `SELECT quantity FROM stock WHERE product_id = $1`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrNotFound
	}
	if err != nil {
		return decimal.Zero, unavailable(err)
	}
	return qty, nil
}
