package store

import (
	"context"

	"github.com/google/uuid"

	"brewdash/m/domain"
)

// CreateProduct inserts the product and its empty stock row in one
// transaction. Assigns the ID when the caller left it blank.
func (s *Store) CreateProduct(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return unavailable(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO products (id, name, type, description, unit_of_measure, sale_price) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Type, p.Description, p.UnitOfMeasure, p.SalePrice); err != nil {
		return unavailable(err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO stock (product_id, quantity) VALUES ($1, 0)`, p.ID); err != nil {
		return unavailable(err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable(err)
	}
	p.Active = true
	return nil
}

// Products returns the active products ordered by name.
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.SelectContext(ctx, &products, `SELECT id, name, type, description, unit_of_measure, sale_price, active, created_at
        FROM products WHERE active = 1 ORDER BY name`)
	if err != nil {
		return nil, unavailable(err)
	}
	return products, nil
}

// UpdateProduct replaces the editable fields of an active product.
func (s *Store) UpdateProduct(ctx context.Context, p *domain.Product) error {
	res, err := s.db.ExecContext(ctx, `UPDATE products SET name = $1, type = $2, description = $3, unit_of_measure = $4, sale_price = $5
        WHERE id = $6 AND active = 1`,
		p.Name, p.Type, p.Description, p.UnitOfMeasure, p.SalePrice, p.ID)
	if err != nil {
		return unavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateProduct soft-deletes a product. Its stock row and transaction
// history stay behind.
func (s *Store) DeactivateProduct(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE products SET active = 0 WHERE id = $1 AND active = 1`, id)
	if err != nil {
		return unavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
