package models

// CompanyDashboard is the per-company view assembled for the dashboard:
// the company record joined with its open opportunities, linked contacts,
// and the latest activity seen across all event streams.
type CompanyDashboard struct {
	Company           Company           `json:"company"`
	OpenOpportunities []Opportunity     `json:"open_opportunities"`
	Contacts          []EnrichedContact `json:"contacts"`

	// LastActivityAt is RFC3339, or empty when neither events nor the
	// company creation time could be parsed.
	LastActivityAt string `json:"last_activity_at"`
}

// Status reports coarse change information for polling clients.
type Status struct {
	LastWriteAt string `json:"last_write_at,omitempty"`
}
