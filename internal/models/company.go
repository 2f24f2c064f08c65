package models

// Company is one row of the Companies tab. Date fields hold the raw cell
// text; the sheet is free-form and rows may be partially populated.
type Company struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Industry   string `json:"industry"`
	Website    string `json:"website"`
	OwnerEmail string `json:"owner_email"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"created_at"`

	// Row is the 1-based sheet row this record was read from. Valid only
	// until the next write to the Companies tab.
	Row int `json:"-"`
}
