package api

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"brewdash/m/domain"
	"brewdash/m/internal/logging"
	"brewdash/m/internal/period"
	"brewdash/m/internal/summary"
)

type dashboardResponse struct {
	Period    period.Range            `json:"period"`
	Financial domain.FinancialSummary `json:"financial"`
	Inventory domain.InventorySummary `json:"inventory"`
}

// dashboard resolves the requested period, loads the period's transactions
// and the current stock concurrently, and reduces both into the landing-page
// metrics. Stock is deliberately not period-filtered.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	rng := rangeFromQuery(r)

	var (
		txs  []domain.Transaction
		rows []domain.StockLevel
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		txs, err = h.store.Transactions(ctx, rng)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = h.store.Inventory(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.LogError("api", "dashboard", "loading dashboard rows", err)
		respondStoreError(w, err, "unable to load dashboard")
		return
	}

	respondJSON(w, http.StatusOK, dashboardResponse{
		Period:    rng,
		Financial: summary.Financials(txs),
		Inventory: summary.Inventory(rows),
	})
}
