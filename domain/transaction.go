package domain

import "github.com/shopspring/decimal"

// Transaction kinds. Gains are revenue, optionally tied to a product and a
// quantity sold; expenses carry a free-text category and never a product.
const (
	KindGain    = "gain"
	KindExpense = "expense"
)

type Transaction struct {
	ID         string              `db:"id" json:"id"`
	Kind       string              `db:"kind" json:"kind"`
	ProductID  *string             `db:"product_id" json:"product_id,omitempty"`
	Category   string              `db:"category" json:"category,omitempty"`
	Amount     decimal.Decimal     `db:"amount" json:"amount"`
	Quantity   decimal.NullDecimal `db:"quantity" json:"quantity,omitempty"`
	OccurredOn string              `db:"occurred_on" json:"occurred_on"`
	Note       string              `db:"note" json:"note,omitempty"`
	CreatedAt  string              `db:"created_at" json:"created_at"`

	// Joined product display fields, present on listings only.
	ProductName *string `db:"product_name" json:"product_name,omitempty"`
	ProductUnit *string `db:"product_unit" json:"product_unit,omitempty"`
}

// MovesStock reports whether creating this transaction must also decrement
// the referenced product's stock. Only gains carrying both a product and a
// nonzero quantity do.
func (t Transaction) MovesStock() bool {
	return t.Kind == KindGain && t.ProductID != nil && t.Quantity.Valid && !t.Quantity.Decimal.IsZero()
}
