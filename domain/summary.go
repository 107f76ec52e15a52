package domain

import "github.com/shopspring/decimal"

// FinancialSummary is the per-period rollup shown on the dashboard.
// GrossRevenue and GainsTotal are equal by definition in the current model;
// both are kept because they are displayed under different labels.
type FinancialSummary struct {
	GrossRevenue  decimal.Decimal `json:"gross_revenue"`
	GainsTotal    decimal.Decimal `json:"gains_total"`
	ExpensesTotal decimal.Decimal `json:"expenses_total"`
	Profit        decimal.Decimal `json:"profit"`
	BarrelsSold   decimal.Decimal `json:"barrels_sold"`
	LitersSold    decimal.Decimal `json:"liters_sold"`
}

// InventorySummary is the current-stock rollup. It is barrel-centric: stock
// held in other units is not converted and not counted.
type InventorySummary struct {
	BarrelsInStock decimal.Decimal `json:"barrels_in_stock"`
	LitersInStock  decimal.Decimal `json:"liters_in_stock"`
}
