package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/pkg/logger"
)

// ListInteractions handles GET /interactions
func (h *Handler) ListInteractions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.activity.Interactions(r.Context()))
}

// LogInteraction handles POST /interactions
func (h *Handler) LogInteraction(w http.ResponseWriter, r *http.Request) {
	var in models.Interaction
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	created, err := h.activity.LogInteraction(r.Context(), in)
	if err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// DeleteInteraction handles DELETE /interactions/{id}
func (h *Handler) DeleteInteraction(w http.ResponseWriter, r *http.Request) {
	if err := h.activity.DeleteInteraction(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListAnnouncements handles GET /announcements
func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.activity.Announcements(r.Context()))
}

// PostAnnouncement handles POST /announcements
func (h *Handler) PostAnnouncement(w http.ResponseWriter, r *http.Request) {
	var a models.Announcement
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	created, err := h.activity.PostAnnouncement(r.Context(), a)
	if err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// PinAnnouncement handles PUT /announcements/{id}/pin
func (h *Handler) PinAnnouncement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Pinned bool `json:"pinned"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	if err := h.activity.PinAnnouncement(r.Context(), mux.Vars(r)["id"], body.Pinned); err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"pinned": body.Pinned})
}

// ListWeekly handles GET /weekly
func (h *Handler) ListWeekly(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.activity.WeeklyEntries(r.Context()))
}

// FileWeekly handles POST /weekly
func (h *Handler) FileWeekly(w http.ResponseWriter, r *http.Request) {
	var e models.WeeklyEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body", logger.FromContext(r.Context()))
		return
	}
	created, err := h.activity.FileWeekly(r.Context(), e)
	if err != nil {
		respondError(w, http.StatusBadGateway, ErrCodeWriteFailed, err.Error(), logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusCreated, created)
}
