package readers

import (
	"context"
	"log/slog"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/join"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Opportunities tab layout.
const (
	oppColID = iota
	oppColCompanyID
	oppColTitle
	oppColStage
	oppColAmount
	oppColOwner
	oppColCreatedAt
	oppColUpdatedAt
)

const OpportunitiesKey = "opportunities"

var OpportunitiesRange = sheets.Range{Sheet: "Opportunities", Cells: "A2:H"}

// Opportunities reads the opportunity table, most recently updated first.
type Opportunities struct {
	store *cache.Store
	src   sheets.Source
	log   *slog.Logger
}

func NewOpportunities(store *cache.Store, src sheets.Source, log *slog.Logger) *Opportunities {
	return &Opportunities{store: store, src: src, log: log}
}

func (r *Opportunities) List(ctx context.Context) []models.Opportunity {
	recs, err := cache.FetchAndCache(ctx, r.store, OpportunitiesKey, r.src, OpportunitiesRange, parseOpportunity, opportunityLess)
	if err != nil {
		r.log.Error("opportunities fetch failed", "error", err)
		return nil
	}
	return recs
}

func (r *Opportunities) Get(ctx context.Context, id string) (models.Opportunity, bool) {
	for _, o := range r.List(ctx) {
		if o.ID == id {
			return o, true
		}
	}
	return models.Opportunity{}, false
}

// ForCompany returns a company's opportunities. openOnly drops closed ones.
func (r *Opportunities) ForCompany(ctx context.Context, companyID string, openOnly bool) []models.Opportunity {
	var out []models.Opportunity
	for _, o := range r.List(ctx) {
		if o.CompanyID != companyID {
			continue
		}
		if openOnly && !o.Open() {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (r *Opportunities) Page(ctx context.Context, page, size int) []models.Opportunity {
	return paginate(r.List(ctx), page, size)
}

// opportunityLess orders by update time, newest first. Records whose
// timestamp does not parse sort last, keeping sheet order among themselves.
func opportunityLess(a, b models.Opportunity) bool {
	at, aok := join.ParseTime(a.UpdatedAt)
	bt, bok := join.ParseTime(b.UpdatedAt)
	if aok != bok {
		return aok
	}
	if !aok {
		return false
	}
	return at.After(bt)
}

func parseOpportunity(row []string, idx int) models.Opportunity {
	return models.Opportunity{
		ID:         col(row, oppColID),
		CompanyID:  col(row, oppColCompanyID),
		Title:      col(row, oppColTitle),
		Stage:      col(row, oppColStage),
		Amount:     col(row, oppColAmount),
		OwnerEmail: col(row, oppColOwner),
		CreatedAt:  col(row, oppColCreatedAt),
		UpdatedAt:  col(row, oppColUpdatedAt),
		Row:        idx + 1,
	}
}

func EncodeOpportunity(o models.Opportunity) []string {
	return []string{o.ID, o.CompanyID, o.Title, o.Stage, o.Amount, o.OwnerEmail, o.CreatedAt, o.UpdatedAt}
}
