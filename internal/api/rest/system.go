package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gridcrm/gridcrm-backend/internal/pkg/logger"
)

// Status handles GET /status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.system.Status())
}

// SystemConfig handles GET /config
func (h *Handler) SystemConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.system.Config(r.Context()))
}

// Users handles GET /users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.system.Users(r.Context()))
}

// AuditLog handles GET /audit with optional ?limit=
func (h *Handler) AuditLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.system.Audit(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to read audit log", logger.FromContext(r.Context()))
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// InvalidateCache handles POST /cache/invalidate. An empty or absent key
// evicts every cached dataset.
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key string `json:"key"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	h.system.Invalidate(body.Key)
	respondJSON(w, http.StatusOK, map[string]string{"invalidated": body.Key})
}
