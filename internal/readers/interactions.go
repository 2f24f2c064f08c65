package readers

import (
	"context"
	"log/slog"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/join"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Interactions tab layout.
const (
	interactionColID = iota
	interactionColCompanyID
	interactionColContactID
	interactionColKind
	interactionColSummary
	interactionColOccurredAt
	interactionColCreatedAt
)

const InteractionsKey = "interactions"

var InteractionsRange = sheets.Range{Sheet: "Interactions", Cells: "A2:G"}

// Interactions reads the logged-activity table, newest first.
type Interactions struct {
	store *cache.Store
	src   sheets.Source
	log   *slog.Logger
}

func NewInteractions(store *cache.Store, src sheets.Source, log *slog.Logger) *Interactions {
	return &Interactions{store: store, src: src, log: log}
}

func (r *Interactions) List(ctx context.Context) []models.Interaction {
	recs, err := cache.FetchAndCache(ctx, r.store, InteractionsKey, r.src, InteractionsRange, parseInteraction, interactionLess)
	if err != nil {
		r.log.Error("interactions fetch failed", "error", err)
		return nil
	}
	return recs
}

func (r *Interactions) ForCompany(ctx context.Context, companyID string) []models.Interaction {
	var out []models.Interaction
	for _, in := range r.List(ctx) {
		if in.CompanyID == companyID {
			out = append(out, in)
		}
	}
	return out
}

func (r *Interactions) Page(ctx context.Context, page, size int) []models.Interaction {
	return paginate(r.List(ctx), page, size)
}

func interactionLess(a, b models.Interaction) bool {
	at, aok := join.ParseTime(a.OccurredAt)
	bt, bok := join.ParseTime(b.OccurredAt)
	if aok != bok {
		return aok
	}
	if !aok {
		return false
	}
	return at.After(bt)
}

func parseInteraction(row []string, idx int) models.Interaction {
	return models.Interaction{
		ID:         col(row, interactionColID),
		CompanyID:  col(row, interactionColCompanyID),
		ContactID:  col(row, interactionColContactID),
		Kind:       col(row, interactionColKind),
		Summary:    col(row, interactionColSummary),
		OccurredAt: col(row, interactionColOccurredAt),
		CreatedAt:  col(row, interactionColCreatedAt),
		Row:        idx + 1,
	}
}

func EncodeInteraction(in models.Interaction) []string {
	return []string{in.ID, in.CompanyID, in.ContactID, in.Kind, in.Summary, in.OccurredAt, in.CreatedAt}
}
