package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/pkg/logger"
)

// ListContacts handles GET /contacts with optional ?q=, ?page=, ?size=.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		respondJSON(w, http.StatusOK, h.contacts.Search(r.Context(), q))
		return
	}
	if page, size := pageParams(r); page > 0 && size > 0 {
		respondJSON(w, http.StatusOK, h.contacts.Page(r.Context(), page, size))
		return
	}
	respondJSON(w, http.StatusOK, h.contacts.List(r.Context()))
}

// GetContact handles GET /contacts/{id}
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	c, ok := h.contacts.Get(r.Context(), mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "contact not found", logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// CreateContact handles POST /contacts
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var c models.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	created, err := h.contacts.Create(r.Context(), c)
	if err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateContact handles PUT /contacts/{id}
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var c models.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	c.ID = mux.Vars(r)["id"]
	if err := h.contacts.Update(r.Context(), c); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// DeleteContact handles DELETE /contacts/{id}
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
