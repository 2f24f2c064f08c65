package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/pkg/logger"
)

// pageParams reads ?page= and ?size= query values; 0 means unpaginated.
func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	return page, size
}

// ListCompanies handles GET /companies with optional ?name= (normalized
// exact match), ?q= (substring search), ?page=, ?size=.
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		c, ok := h.companies.FindByName(r.Context(), name)
		if !ok {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "company not found", logger.FromContext(r.Context()))
			return
		}
		respondJSON(w, http.StatusOK, c)
		return
	}
	if q := r.URL.Query().Get("q"); q != "" {
		respondJSON(w, http.StatusOK, h.companies.Search(r.Context(), q))
		return
	}
	if page, size := pageParams(r); page > 0 && size > 0 {
		respondJSON(w, http.StatusOK, h.companies.Page(r.Context(), page, size))
		return
	}
	respondJSON(w, http.StatusOK, h.companies.List(r.Context()))
}

// GetCompany handles GET /companies/{id}
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, ok := h.companies.Get(r.Context(), id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "company not found", logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// CreateCompany handles POST /companies
func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var c models.Company
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	created, err := h.companies.Create(r.Context(), c)
	if err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateCompany handles PUT /companies/{id}
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var c models.Company
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	c.ID = mux.Vars(r)["id"]
	if err := h.companies.Update(r.Context(), c); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// DeleteCompany handles DELETE /companies/{id}
func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.companies.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// CompanyContacts handles GET /companies/{id}/contacts
func (h *Handler) CompanyContacts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.contacts.ForCompany(r.Context(), mux.Vars(r)["id"]))
}

// CompanyInteractions handles GET /companies/{id}/interactions
func (h *Handler) CompanyInteractions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.activity.InteractionsForCompany(r.Context(), mux.Vars(r)["id"]))
}

// CompanyWeekly handles GET /companies/{id}/weekly
func (h *Handler) CompanyWeekly(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.activity.WeeklyForCompany(r.Context(), mux.Vars(r)["id"]))
}

// CompanyDashboard handles GET /companies/{id}/dashboard
func (h *Handler) CompanyDashboard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.dashboard.ForCompany(r.Context(), mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "company not found", logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, d)
}
