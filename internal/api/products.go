package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"brewdash/m/domain"
	"brewdash/m/internal/logging"
)

type productRequest struct {
	Name          string          `json:"name" validate:"required"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	UnitOfMeasure string          `json:"unit_of_measure" validate:"required"`
	SalePrice     decimal.Decimal `json:"sale_price" validate:"-"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner", "staff") {
		return
	}
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SalePrice.IsNegative() {
		respondError(w, http.StatusBadRequest, "sale_price must not be negative")
		return
	}

	product := domain.Product{
		Name:          req.Name,
		Type:          req.Type,
		Description:   req.Description,
		UnitOfMeasure: req.UnitOfMeasure,
		SalePrice:     req.SalePrice,
	}
	if err := h.store.CreateProduct(r.Context(), &product); err != nil {
		logging.LogError("api", "createProduct", "inserting product", err)
		respondStoreError(w, err, "unable to create product")
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.Products(r.Context())
	if err != nil {
		logging.LogError("api", "listProducts", "loading products", err)
		respondStoreError(w, err, "unable to list products")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner", "staff") {
		return
	}
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SalePrice.IsNegative() {
		respondError(w, http.StatusBadRequest, "sale_price must not be negative")
		return
	}

	product := domain.Product{
		ID:            chi.URLParam(r, "id"),
		Name:          req.Name,
		Type:          req.Type,
		Description:   req.Description,
		UnitOfMeasure: req.UnitOfMeasure,
		SalePrice:     req.SalePrice,
	}
	if err := h.store.UpdateProduct(r.Context(), &product); err != nil {
		respondStoreError(w, err, "unable to update product")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner") {
		return
	}
	if err := h.store.DeactivateProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err, "unable to delete product")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Stock handlers

func (h *Handler) listStock(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.Inventory(r.Context())
	if err != nil {
		logging.LogError("api", "listStock", "loading stock", err)
		respondStoreError(w, err, "unable to list stock")
		return
	}
	if rows == nil {
		rows = []domain.StockLevel{}
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *Handler) upsertStock(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner", "staff") {
		return
	}
	var payload struct {
		Quantity decimal.Decimal `json:"quantity"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Quantity.IsNegative() {
		respondError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}
	row, err := h.store.UpsertStock(r.Context(), chi.URLParam(r, "productID"), payload.Quantity)
	if err != nil {
		logging.LogError("api", "upsertStock", "writing stock", err)
		respondStoreError(w, err, "unable to update stock")
		return
	}
	respondJSON(w, http.StatusOK, row)
}
