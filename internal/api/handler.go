package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"brewdash/m/internal/period"
	"brewdash/m/internal/store"
)

type ctxKey string

const (
	ctxUserID ctxKey = "userID"
	ctxRole   ctxKey = "role"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	store    *store.Store
	secret   string
	validate *validator.Validate
}

// New constructs a Handler.
func New(st *store.Store, secret string) *Handler {
	return &Handler{store: st, secret: secret, validate: validator.New()}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Group(func(protected chi.Router) {
			protected.Use(h.authMiddleware)
			protected.Post("/reset-password", h.resetPassword)
		})
	})

	r.Group(func(pr chi.Router) {
		pr.Use(h.authMiddleware)

		pr.Get("/dashboard", h.dashboard)

		pr.Route("/products", func(r chi.Router) {
			r.Post("/", h.createProduct)
			r.Get("/", h.listProducts)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})

		pr.Get("/stock", h.listStock)
		pr.Put("/stock/{productID}", h.upsertStock)

		pr.Route("/transactions", func(r chi.Router) {
			r.Post("/", h.createTransaction)
			r.Get("/", h.listTransactions)
			r.Delete("/{id}", h.deleteTransaction)
		})

		pr.Route("/notes", func(r chi.Router) {
			r.Post("/", h.createNote)
			r.Get("/", h.listNotes)
			r.Put("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// rangeFromQuery resolves the period parameters of dashboard-style requests.
// A custom period reads explicit start/end bounds; everything else goes
// through the selector rule table.
func rangeFromQuery(r *http.Request) period.Range {
	now := time.Now()
	selector := r.URL.Query().Get("period")
	if selector == period.Custom {
		return period.ResolveCustom(r.URL.Query().Get("start"), r.URL.Query().Get("end"), now)
	}
	return period.Resolve(selector, now)
}

// Helpers

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStoreError maps storage failures onto HTTP statuses: missing rows to
// 404, an unreachable backend to 503.
func respondStoreError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, message)
	default:
		respondError(w, http.StatusInternalServerError, message)
	}
}
