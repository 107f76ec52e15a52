package domain

import "github.com/shopspring/decimal"

// StockLevel is the single inventory row kept per product. It is created at
// quantity zero alongside its product and only ever replaced by upsert or
// decremented by a gain.
type StockLevel struct {
	ProductID   string          `db:"product_id" json:"product_id"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	ProductName *string         `db:"product_name" json:"product_name,omitempty"`
	ProductUnit *string         `db:"product_unit" json:"product_unit,omitempty"`
	CreatedAt   string          `db:"created_at" json:"created_at"`
	UpdatedAt   string          `db:"updated_at" json:"updated_at"`
}
