package readers

import (
	"context"
	"log/slog"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/join"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Weekly tab layout.
const (
	weeklyColID = iota
	weeklyColCompanyID
	weeklyColWeekOf
	weeklyColAuthor
	weeklyColHighlights
	weeklyColCreatedAt
)

const WeeklyKey = "weeklyEntries"

var WeeklyRange = sheets.Range{Sheet: "Weekly", Cells: "A2:F"}

// Weekly reads the per-company weekly status notes, latest week first.
type Weekly struct {
	store *cache.Store
	src   sheets.Source
	log   *slog.Logger
}

func NewWeekly(store *cache.Store, src sheets.Source, log *slog.Logger) *Weekly {
	return &Weekly{store: store, src: src, log: log}
}

func (r *Weekly) List(ctx context.Context) []models.WeeklyEntry {
	recs, err := cache.FetchAndCache(ctx, r.store, WeeklyKey, r.src, WeeklyRange, parseWeekly, weeklyLess)
	if err != nil {
		r.log.Error("weekly entries fetch failed", "error", err)
		return nil
	}
	return recs
}

func (r *Weekly) ForCompany(ctx context.Context, companyID string) []models.WeeklyEntry {
	var out []models.WeeklyEntry
	for _, w := range r.List(ctx) {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out
}

func weeklyLess(a, b models.WeeklyEntry) bool {
	at, aok := join.ParseTime(a.WeekOf)
	bt, bok := join.ParseTime(b.WeekOf)
	if aok != bok {
		return aok
	}
	if !aok {
		return false
	}
	return at.After(bt)
}

func parseWeekly(row []string, idx int) models.WeeklyEntry {
	return models.WeeklyEntry{
		ID:          col(row, weeklyColID),
		CompanyID:   col(row, weeklyColCompanyID),
		WeekOf:      col(row, weeklyColWeekOf),
		AuthorEmail: col(row, weeklyColAuthor),
		Highlights:  col(row, weeklyColHighlights),
		CreatedAt:   col(row, weeklyColCreatedAt),
		Row:         idx + 1,
	}
}

func EncodeWeekly(w models.WeeklyEntry) []string {
	return []string{w.ID, w.CompanyID, w.WeekOf, w.AuthorEmail, w.Highlights, w.CreatedAt}
}
