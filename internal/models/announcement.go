package models

// Announcement is one row of the Announcements tab. Pinned announcements
// sort above everything else regardless of recency.
type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	AuthorEmail string `json:"author_email"`
	Pinned      bool   `json:"pinned"`
	UpdatedAt   string `json:"updated_at"`

	Row int `json:"-"`
}
