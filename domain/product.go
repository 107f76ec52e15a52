package domain

import "github.com/shopspring/decimal"

// UnitBarrel is the unit of measure that feeds the barrel/liter stock rollup.
// Products sold in any other unit are tracked but never counted as barrels.
const UnitBarrel = "barrel"

type Product struct {
	ID            string          `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	Type          string          `db:"type" json:"type"`
	Description   string          `db:"description" json:"description,omitempty"`
	UnitOfMeasure string          `db:"unit_of_measure" json:"unit_of_measure"`
	SalePrice     decimal.Decimal `db:"sale_price" json:"sale_price"`
	Active        bool            `db:"active" json:"active"`
	CreatedAt     string          `db:"created_at" json:"created_at"`
}
