package models

// WeeklyEntry is one row of the Weekly tab: a per-company status note filed
// by an account owner for a given week.
type WeeklyEntry struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	WeekOf      string `json:"week_of"`
	AuthorEmail string `json:"author_email"`
	Highlights  string `json:"highlights"`
	CreatedAt   string `json:"created_at"`

	Row int `json:"-"`
}
