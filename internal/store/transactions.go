package store

import (
	"context"

	"github.com/google/uuid"

	"brewdash/m/domain"
	"brewdash/m/internal/period"
)

// CreateTransaction inserts a financial transaction. When the transaction is
// a gain tied to a product with a nonzero quantity, the product's stock is
// decremented in the same database transaction with a single relative UPDATE,
// so concurrent sales of one product cannot lose updates.
func (s *Store) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return unavailable(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO transactions (id, kind, product_id, category, amount, quantity, occurred_on, note)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.Kind, t.ProductID, t.Category, t.Amount, t.Quantity, t.OccurredOn, t.Note); err != nil {
		return unavailable(err)
	}

	if t.MovesStock() {
		if _, err := tx.ExecContext(ctx, `UPDATE stock SET quantity = quantity - $1, updated_at = CURRENT_TIMESTAMP WHERE product_id = $2`,
			t.Quantity.Decimal, *t.ProductID); err != nil {
			return unavailable(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable(err)
	}
	return nil
}

// Transactions returns all transactions whose occurred_on falls inside the
// range, both ends inclusive, newest first, with the linked product's display
// name and unit joined in.
func (s *Store) Transactions(ctx context.Context, rng period.Range) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := s.db.SelectContext(ctx, &txs, `SELECT t.id, t.kind, t.product_id, t.category, t.amount, t.quantity, t.occurred_on, t.note, t.created_at,
            p.name AS product_name, p.unit_of_measure AS product_unit
        FROM transactions t
        LEFT JOIN products p ON p.id = t.product_id
        WHERE t.occurred_on >= $1 AND t.occurred_on <= $2
        ORDER BY t.occurred_on DESC, t.created_at DESC`, rng.Start, rng.End)
	if err != nil {
		return nil, unavailable(err)
	}
	return txs, nil
}

// DeleteTransaction removes a transaction. Stock is not restored: the
// original record of the sale is gone but the beer still left the cellar.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
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
