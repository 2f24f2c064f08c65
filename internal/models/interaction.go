package models

// Interaction is one row of the Interactions tab: a call, meeting, or email
// logged against a company.
type Interaction struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	ContactID  string `json:"contact_id"`
	Kind       string `json:"kind"`
	Summary    string `json:"summary"`
	OccurredAt string `json:"occurred_at"`
	CreatedAt  string `json:"created_at"`

	Row int `json:"-"`
}
