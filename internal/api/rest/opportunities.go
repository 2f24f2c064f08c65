package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/pkg/logger"
)

// ListOpportunities handles GET /opportunities with optional ?page=, ?size=.
func (h *Handler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	if page, size := pageParams(r); page > 0 && size > 0 {
		respondJSON(w, http.StatusOK, h.opportunities.Page(r.Context(), page, size))
		return
	}
	respondJSON(w, http.StatusOK, h.opportunities.List(r.Context()))
}

// GetOpportunity handles GET /opportunities/{id}
func (h *Handler) GetOpportunity(w http.ResponseWriter, r *http.Request) {
	o, ok := h.opportunities.Get(r.Context(), mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "opportunity not found", logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// CreateOpportunity handles POST /opportunities
func (h *Handler) CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	var o models.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	created, err := h.opportunities.Create(r.Context(), o)
	if err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateOpportunity handles PUT /opportunities/{id}
func (h *Handler) UpdateOpportunity(w http.ResponseWriter, r *http.Request) {
	var o models.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	o.ID = mux.Vars(r)["id"]
	if err := h.opportunities.Update(r.Context(), o); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// SetOpportunityStage handles PUT /opportunities/{id}/stage
func (h *Handler) SetOpportunityStage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stage string `json:"stage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Stage == "" {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "stage is required", logger.FromContext(r.Context()))
		return
	}
	if err := h.opportunities.SetStage(r.Context(), mux.Vars(r)["id"], body.Stage); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"stage": body.Stage})
}

// OpportunityContacts handles GET /opportunities/{id}/contacts
func (h *Handler) OpportunityContacts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.contacts.LinkedContacts(r.Context(), mux.Vars(r)["id"]))
}

// LinkContact handles POST /opportunities/{id}/contacts
func (h *Handler) LinkContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ContactID string `json:"contact_id"`
		Role      string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ContactID == "" {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "contact_id is required", logger.FromContext(r.Context()))
		return
	}
	if err := h.contacts.Link(r.Context(), mux.Vars(r)["id"], body.ContactID, body.Role); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusCreated, body)
}

// UnlinkContact handles DELETE /opportunities/{id}/contacts/{contactId}
func (h *Handler) UnlinkContact(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.contacts.Unlink(r.Context(), vars["id"], vars["contactId"]); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
