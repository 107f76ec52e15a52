package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"brewdash/m/domain"
	"brewdash/m/internal/logging"
)

type transactionRequest struct {
	Kind       string              `json:"kind" validate:"required,oneof=gain expense"`
	ProductID  *string             `json:"product_id" validate:"omitempty,uuid"`
	Category   string              `json:"category" validate:"required_if=Kind expense"`
	Amount     decimal.Decimal     `json:"amount" validate:"-"`
	Quantity   decimal.NullDecimal `json:"quantity" validate:"-"`
	OccurredOn string              `json:"occurred_on" validate:"required,datetime=2006-01-02"`
	Note       string              `json:"note"`
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner", "staff") {
		return
	}
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	// The aggregation engine sums whatever it is given; the form boundary is
	// the one place negative figures are turned away.
	if req.Amount.IsNegative() {
		respondError(w, http.StatusBadRequest, "amount must not be negative")
		return
	}
	if req.Quantity.Valid && req.Quantity.Decimal.IsNegative() {
		respondError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	tx := domain.Transaction{
		Kind:       req.Kind,
		ProductID:  req.ProductID,
		Category:   req.Category,
		Amount:     req.Amount,
		Quantity:   req.Quantity,
		OccurredOn: req.OccurredOn,
		Note:       req.Note,
	}
	if err := h.store.CreateTransaction(r.Context(), &tx); err != nil {
		logging.LogError("api", "createTransaction", "inserting transaction", err)
		respondStoreError(w, err, "unable to create transaction")
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	rng := rangeFromQuery(r)
	txs, err := h.store.Transactions(r.Context(), rng)
	if err != nil {
		logging.LogError("api", "listTransactions", "loading transactions", err)
		respondStoreError(w, err, "unable to list transactions")
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner", "staff") {
		return
	}
	if err := h.store.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err, "unable to delete transaction")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
