package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"brewdash/m/domain"
	"brewdash/m/internal/database"
	"brewdash/m/internal/migrations"
	"brewdash/m/internal/period"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)
	return New(db)
}

func newBarrelProduct(t *testing.T, s *Store, name string) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:          name,
		Type:          "pilsner",
		UnitOfMeasure: domain.UnitBarrel,
		SalePrice:     decimal.NewFromInt(350),
	}
	if err := s.CreateProduct(context.Background(), p); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	return p
}

func gain(productID string, amount, qty string, day string) *domain.Transaction {
	q, _ := decimal.NewFromString(qty)
	a, _ := decimal.NewFromString(amount)
	return &domain.Transaction{
		Kind:       domain.KindGain,
		ProductID:  &productID,
		Amount:     a,
		Quantity:   decimal.NullDecimal{Decimal: q, Valid: true},
		OccurredOn: day,
	}
}

func TestCreateProductInstallsEmptyStockRow(t *testing.T) {
	s := newTestStore(t)
	p := newBarrelProduct(t, s, "IPA")

	qty, err := s.StockQuantity(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("StockQuantity: %v", err)
	}
	if !qty.IsZero() {
		t.Fatalf("new product stock = %s, want 0", qty)
	}

	rows, err := s.Inventory(context.Background())
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Inventory rows = %d, want 1", len(rows))
	}
	if rows[0].ProductUnit == nil || *rows[0].ProductUnit != domain.UnitBarrel {
		t.Fatalf("joined unit = %v, want barrel", rows[0].ProductUnit)
	}
}

func TestGainDecrementsStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := newBarrelProduct(t, s, "Stout")

	if _, err := s.UpsertStock(ctx, p.ID, decimal.NewFromInt(10)); err != nil {
		t.Fatalf("UpsertStock: %v", err)
	}
	if err := s.CreateTransaction(ctx, gain(p.ID, "300", "3", "2025-03-10")); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	qty, err := s.StockQuantity(ctx, p.ID)
	if err != nil {
		t.Fatalf("StockQuantity: %v", err)
	}
	if !qty.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("stock after sale = %s, want 7", qty)
	}
}

func TestExpenseAndQuantitylessGainLeaveStockAlone(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := newBarrelProduct(t, s, "Lager")
	if _, err := s.UpsertStock(ctx, p.ID, decimal.NewFromInt(10)); err != nil {
		t.Fatalf("UpsertStock: %v", err)
	}

	expense := &domain.Transaction{
		Kind:       domain.KindExpense,
		Category:   "hops",
		Amount:     decimal.NewFromInt(40),
		OccurredOn: "2025-03-10",
	}
	if err := s.CreateTransaction(ctx, expense); err != nil {
		t.Fatalf("CreateTransaction expense: %v", err)
	}

	bareGain := &domain.Transaction{
		Kind:       domain.KindGain,
		ProductID:  &p.ID,
		Amount:     decimal.NewFromInt(50),
		OccurredOn: "2025-03-11",
	}
	if err := s.CreateTransaction(ctx, bareGain); err != nil {
		t.Fatalf("CreateTransaction bare gain: %v", err)
	}

	qty, err := s.StockQuantity(ctx, p.ID)
	if err != nil {
		t.Fatalf("StockQuantity: %v", err)
	}
	if !qty.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("stock = %s, want untouched 10", qty)
	}
}

func TestConcurrentGainsDoNotLoseUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := newBarrelProduct(t, s, "Weiss")
	if _, err := s.UpsertStock(ctx, p.ID, decimal.NewFromInt(10)); err != nil {
		t.Fatalf("UpsertStock: %v", err)
	}

	var wg sync.WaitGroup
	for _, q := range []string{"3", "4"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			if err := s.CreateTransaction(ctx, gain(p.ID, "100", q, "2025-03-10")); err != nil {
				t.Errorf("CreateTransaction(%s): %v", q, err)
			}
		}(q)
	}
	wg.Wait()

	qty, err := s.StockQuantity(ctx, p.ID)
	if err != nil {
		t.Fatalf("StockQuantity: %v", err)
	}
	if !qty.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("stock after concurrent sales = %s, want exactly 3", qty)
	}
}

func TestTransactionsRangeIsInclusive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := newBarrelProduct(t, s, "Porter")

	for _, day := range []string{"2025-02-28", "2025-03-01", "2025-03-15", "2025-04-01"} {
		if err := s.CreateTransaction(ctx, gain(p.ID, "100", "1", day)); err != nil {
			t.Fatalf("CreateTransaction(%s): %v", day, err)
		}
	}

	txs, err := s.Transactions(ctx, period.Range{Start: "2025-03-01", End: "2025-03-15"})
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("Transactions in range = %d, want 2 (boundaries included)", len(txs))
	}
	if txs[0].OccurredOn != "2025-03-15" || txs[1].OccurredOn != "2025-03-01" {
		t.Fatalf("Transactions order = %s, %s, want newest first", txs[0].OccurredOn, txs[1].OccurredOn)
	}
	if txs[0].ProductName == nil || *txs[0].ProductName != "Porter" {
		t.Fatalf("joined product name = %v, want Porter", txs[0].ProductName)
	}
}

func TestDeleteTransaction(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := newBarrelProduct(t, s, "Amber")

	tx := gain(p.ID, "100", "1", "2025-03-10")
	if err := s.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if err := s.DeleteTransaction(ctx, tx.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if err := s.DeleteTransaction(ctx, tx.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestNotesCategoryFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, n := range []*domain.Note{
		{Category: "Production", Title: "new batch of pilsner"},
		{Category: "Deliveries", Title: "route change"},
		{Category: "Production", Title: "fix fermenter 2"},
	} {
		if err := s.CreateNote(ctx, n); err != nil {
			t.Fatalf("CreateNote: %v", err)
		}
	}

	prod, err := s.Notes(ctx, "Production")
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if len(prod) != 2 {
		t.Fatalf("Production notes = %d, want 2", len(prod))
	}

	all, err := s.Notes(ctx, "")
	if err != nil {
		t.Fatalf("Notes all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all notes = %d, want 3", len(all))
	}
}

func TestUpsertStockReplacesQuantity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := newBarrelProduct(t, s, "Saison")

	row, err := s.UpsertStock(ctx, p.ID, decimal.RequireFromString("12.5"))
	if err != nil {
		t.Fatalf("UpsertStock: %v", err)
	}
	if !row.Quantity.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("upserted quantity = %s, want 12.5", row.Quantity)
	}

	row, err = s.UpsertStock(ctx, p.ID, decimal.NewFromInt(8))
	if err != nil {
		t.Fatalf("UpsertStock replace: %v", err)
	}
	if !row.Quantity.Equal(decimal.NewFromInt(8)) {
		t.Fatalf("replaced quantity = %s, want 8", row.Quantity)
	}
}

func TestDeactivatedProductKeepsStockRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := newBarrelProduct(t, s, "Dubbel")

	if err := s.DeactivateProduct(ctx, p.ID); err != nil {
		t.Fatalf("DeactivateProduct: %v", err)
	}
	products, err := s.Products(ctx)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("active products = %d, want 0", len(products))
	}
	if _, err := s.StockQuantity(ctx, p.ID); err != nil {
		t.Fatalf("stock row should survive deactivation: %v", err)
	}
}
