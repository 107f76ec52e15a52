// Package summary holds the dashboard's aggregation engine: pure reductions
// over already-fetched rows, recomputed from scratch on every period change.
package summary

import (
	"github.com/shopspring/decimal"

	"brewdash/m/domain"
)

// BarrelLiters is the volume of one barrel in liters. Business constant, not
// configurable.
var BarrelLiters = decimal.NewFromInt(30)

// Financials reduces a period's transactions into the financial rollup.
// Inputs are summed as received; negative values are the form's problem, not
// this function's.
func Financials(txs []domain.Transaction) domain.FinancialSummary {
	gains := decimal.Zero
	expenses := decimal.Zero
	barrels := decimal.Zero

	for _, tx := range txs {
		switch tx.Kind {
		case domain.KindGain:
			gains = gains.Add(tx.Amount)
			if tx.Quantity.Valid {
				barrels = barrels.Add(tx.Quantity.Decimal)
			}
		case domain.KindExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}

	return domain.FinancialSummary{
		GrossRevenue:  gains,
		GainsTotal:    gains,
		ExpensesTotal: expenses,
		Profit:        gains.Sub(expenses),
		BarrelsSold:   barrels,
		LitersSold:    barrels.Mul(BarrelLiters),
	}
}

// Inventory reduces the current stock rows into the barrel rollup. Rows whose
// product is missing or sold in a non-barrel unit are skipped, not converted.
func Inventory(rows []domain.StockLevel) domain.InventorySummary {
	barrels := decimal.Zero
	for _, row := range rows {
		if row.ProductUnit == nil || *row.ProductUnit != domain.UnitBarrel {
			continue
		}
		barrels = barrels.Add(row.Quantity)
	}
	return domain.InventorySummary{
		BarrelsInStock: barrels,
		LitersInStock:  barrels.Mul(BarrelLiters),
	}
}
