package models

// Opportunity stages that count as closed. Anything else is open.
const (
	StageClosedWon  = "closed_won"
	StageClosedLost = "closed_lost"
)

// Opportunity is one row of the Opportunities tab.
type Opportunity struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	Title      string `json:"title"`
	Stage      string `json:"stage"`
	Amount     string `json:"amount"`
	OwnerEmail string `json:"owner_email"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`

	Row int `json:"-"`
}

// Open reports whether the opportunity is still in play.
func (o Opportunity) Open() bool {
	return o.Stage != StageClosedWon && o.Stage != StageClosedLost
}
