package rest

import "net/http"

// Dashboard handles GET /dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.Overview(r.Context()))
}
