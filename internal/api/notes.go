package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"brewdash/m/domain"
	"brewdash/m/internal/logging"
)

type noteRequest struct {
	Category string `json:"category" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner", "staff") {
		return
	}
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	note := domain.Note{Category: req.Category, Title: req.Title, Content: req.Content}
	if err := h.store.CreateNote(r.Context(), &note); err != nil {
		logging.LogError("api", "createNote", "inserting note", err)
		respondStoreError(w, err, "unable to create note")
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.store.Notes(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		logging.LogError("api", "listNotes", "loading notes", err)
		respondStoreError(w, err, "unable to list notes")
		return
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	respondJSON(w, http.StatusOK, notes)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner", "staff") {
		return
	}
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	note := domain.Note{
		ID:       chi.URLParam(r, "id"),
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := h.store.UpdateNote(r.Context(), &note); err != nil {
		respondStoreError(w, err, "unable to update note")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "owner", "staff") {
		return
	}
	if err := h.store.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err, "unable to delete note")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
