package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gridcrm/gridcrm-backend/internal/service"
)

// Handler manages HTTP request handlers
type Handler struct {
	companies     *service.CompanyService
	contacts      *service.ContactService
	opportunities *service.OpportunityService
	activity      *service.ActivityService
	dashboard     *service.DashboardService
	system        *service.SystemService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	companies *service.CompanyService,
	contacts *service.ContactService,
	opportunities *service.OpportunityService,
	activity *service.ActivityService,
	dashboard *service.DashboardService,
	system *service.SystemService,
) *Handler {
	return &Handler{
		companies:     companies,
		contacts:      contacts,
		opportunities: opportunities,
		activity:      activity,
		dashboard:     dashboard,
		system:        system,
	}
}

// SetupRoutes configures API routes
func SetupRoutes(router *mux.Router, h *Handler) {
	// Company routes
	router.HandleFunc("/companies", h.ListCompanies).Methods("GET")
	router.HandleFunc("/companies", h.CreateCompany).Methods("POST")
	router.HandleFunc("/companies/{id}", h.GetCompany).Methods("GET")
	router.HandleFunc("/companies/{id}", h.UpdateCompany).Methods("PUT")
	router.HandleFunc("/companies/{id}", h.DeleteCompany).Methods("DELETE")
	router.HandleFunc("/companies/{id}/contacts", h.CompanyContacts).Methods("GET")
	router.HandleFunc("/companies/{id}/interactions", h.CompanyInteractions).Methods("GET")
	router.HandleFunc("/companies/{id}/weekly", h.CompanyWeekly).Methods("GET")
	router.HandleFunc("/companies/{id}/dashboard", h.CompanyDashboard).Methods("GET")

	// Contact routes
	router.HandleFunc("/contacts", h.ListContacts).Methods("GET")
	router.HandleFunc("/contacts", h.CreateContact).Methods("POST")
	router.HandleFunc("/contacts/{id}", h.GetContact).Methods("GET")
	router.HandleFunc("/contacts/{id}", h.UpdateContact).Methods("PUT")
	router.HandleFunc("/contacts/{id}", h.DeleteContact).Methods("DELETE")

	// Opportunity routes
	router.HandleFunc("/opportunities", h.ListOpportunities).Methods("GET")
	router.HandleFunc("/opportunities", h.CreateOpportunity).Methods("POST")
	router.HandleFunc("/opportunities/{id}", h.GetOpportunity).Methods("GET")
	router.HandleFunc("/opportunities/{id}", h.UpdateOpportunity).Methods("PUT")
	router.HandleFunc("/opportunities/{id}/stage", h.SetOpportunityStage).Methods("PUT")
	router.HandleFunc("/opportunities/{id}/contacts", h.OpportunityContacts).Methods("GET")
	router.HandleFunc("/opportunities/{id}/contacts", h.LinkContact).Methods("POST")
	router.HandleFunc("/opportunities/{id}/contacts/{contactId}", h.UnlinkContact).Methods("DELETE")

	// Activity routes
	router.HandleFunc("/interactions", h.ListInteractions).Methods("GET")
	router.HandleFunc("/interactions", h.LogInteraction).Methods("POST")
	router.HandleFunc("/interactions/{id}", h.DeleteInteraction).Methods("DELETE")
	router.HandleFunc("/announcements", h.ListAnnouncements).Methods("GET")
	router.HandleFunc("/announcements", h.PostAnnouncement).Methods("POST")
	router.HandleFunc("/announcements/{id}/pin", h.PinAnnouncement).Methods("PUT")
	router.HandleFunc("/weekly", h.ListWeekly).Methods("GET")
	router.HandleFunc("/weekly", h.FileWeekly).Methods("POST")

	// Dashboard
	router.HandleFunc("/dashboard", h.Dashboard).Methods("GET")

	// System routes
	router.HandleFunc("/status", h.Status).Methods("GET")
	router.HandleFunc("/config", h.SystemConfig).Methods("GET")
	router.HandleFunc("/users", h.Users).Methods("GET")
	router.HandleFunc("/audit", h.AuditLog).Methods("GET")
	router.HandleFunc("/cache/invalidate", h.InvalidateCache).Methods("POST")

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")
}
