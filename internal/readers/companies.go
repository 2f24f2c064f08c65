package readers

import (
	"context"
	"log/slog"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/join"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Companies tab layout. The data range starts at row 2; row 1 is the header.
const (
	companyColID = iota
	companyColName
	companyColIndustry
	companyColWebsite
	companyColOwner
	companyColNotes
	companyColCreatedAt
)

const CompaniesKey = "companies"

var CompaniesRange = sheets.Range{Sheet: "Companies", Cells: "A2:G"}

// Companies reads the company table through the shared cache.
type Companies struct {
	store *cache.Store
	src   sheets.Source
	log   *slog.Logger
}

func NewCompanies(store *cache.Store, src sheets.Source, log *slog.Logger) *Companies {
	return &Companies{store: store, src: src, log: log}
}

// List returns all companies in sheet order. A transport failure degrades
// to an empty result; the error is logged and the next call retries.
func (r *Companies) List(ctx context.Context) []models.Company {
	recs, err := cache.FetchAndCache(ctx, r.store, CompaniesKey, r.src, CompaniesRange, parseCompany, nil)
	if err != nil {
		r.log.Error("companies fetch failed", "error", err)
		return nil
	}
	return recs
}

// Get returns the company with the given ID.
func (r *Companies) Get(ctx context.Context, id string) (models.Company, bool) {
	for _, c := range r.List(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Company{}, false
}

// FindByName matches on the normalized company name.
func (r *Companies) FindByName(ctx context.Context, name string) (models.Company, bool) {
	key := join.Normalize(name)
	byName := join.BuildJoinMap(r.List(ctx),
		func(c models.Company) string { return join.Normalize(c.Name) },
		func(c models.Company) models.Company { return c })
	c, ok := byName[key]
	return c, ok
}

// Search returns companies whose name, industry, or owner contains q.
func (r *Companies) Search(ctx context.Context, q string) []models.Company {
	if q == "" {
		return r.List(ctx)
	}
	var out []models.Company
	for _, c := range r.List(ctx) {
		if matches(c.Name, q) || matches(c.Industry, q) || matches(c.OwnerEmail, q) {
			out = append(out, c)
		}
	}
	return out
}

// Page returns the 1-based page of the given size.
func (r *Companies) Page(ctx context.Context, page, size int) []models.Company {
	return paginate(r.List(ctx), page, size)
}

func parseCompany(row []string, idx int) models.Company {
	return models.Company{
		ID:         col(row, companyColID),
		Name:       col(row, companyColName),
		Industry:   col(row, companyColIndustry),
		Website:    col(row, companyColWebsite),
		OwnerEmail: col(row, companyColOwner),
		Notes:      col(row, companyColNotes),
		CreatedAt:  col(row, companyColCreatedAt),
		Row:        idx + 1, // range starts below the header row
	}
}

// EncodeCompany renders a company as a sheet row in tab column order.
// Writers use this so the field-index map stays in one place.
func EncodeCompany(c models.Company) []string {
	return []string{c.ID, c.Name, c.Industry, c.Website, c.OwnerEmail, c.Notes, c.CreatedAt}
}
