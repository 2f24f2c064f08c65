package models

// Contact is one row of the Contacts tab (the official contact list).
type Contact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Title     string `json:"title"`
	CompanyID string `json:"company_id"`
	PhotoURL  string `json:"photo_url"`
	CreatedAt string `json:"created_at"`

	Row int `json:"-"`
}

// PotentialContact is one row of the PotentialContacts tab: prospecting
// imports that carry no stable identifier, only a display name, a company
// name, and the originating profile link.
type PotentialContact struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	PhotoURL    string `json:"photo_url"`
	SourceURL   string `json:"source_url"`

	Row int `json:"-"`
}

// ContactLink ties an official contact to a parent record (an opportunity).
type ContactLink struct {
	ParentID  string `json:"parent_id"`
	ContactID string `json:"contact_id"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`

	Row int `json:"-"`
}

// EnrichedContact is a contact resolved against the company and
// potential-contact tables for display. Empty CompanyName or PhotoURL means
// the join found no match.
type EnrichedContact struct {
	Contact
	CompanyName string `json:"company_name"`
	LinkRole    string `json:"link_role"`
}
