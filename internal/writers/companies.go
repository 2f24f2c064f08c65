package writers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Companies writes the Companies tab.
type Companies struct {
	Deps
}

func NewCompanies(d Deps) *Companies {
	return &Companies{Deps: d}
}

// Create appends a new company row. ID and CreatedAt are filled when empty.
func (w *Companies) Create(ctx context.Context, c models.Company) (models.Company, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt == "" {
		c.CreatedAt = nowCell()
	}
	if err := w.Source.Write(ctx, readers.CompaniesRange, [][]string{readers.EncodeCompany(c)}, sheets.Append); err != nil {
		return models.Company{}, fmt.Errorf("create company: %w", err)
	}
	w.committed(ctx, "companies", "create", c.ID, 0, readers.CompaniesKey)
	return c, nil
}

// Update overwrites the company's row in place. c.Row must come from a
// record read after the tab's last mutation.
func (w *Companies) Update(ctx context.Context, c models.Company) error {
	if c.Row < 2 {
		return fmt.Errorf("update company %s: no row index", c.ID)
	}
	ref := readers.CompaniesRange.Row(c.Row)
	if err := w.Source.Write(ctx, ref, [][]string{readers.EncodeCompany(c)}, sheets.Update); err != nil {
		return fmt.Errorf("update company %s: %w", c.ID, err)
	}
	w.committed(ctx, "companies", "update", c.ID, c.Row, readers.CompaniesKey)
	return nil
}

// Delete removes the company's sheet row.
func (w *Companies) Delete(ctx context.Context, c models.Company) error {
	if c.Row < 2 {
		return fmt.Errorf("delete company %s: no row index", c.ID)
	}
	if err := w.Source.DeleteRows(ctx, readers.CompaniesRange.Sheet, c.Row, c.Row); err != nil {
		return fmt.Errorf("delete company %s: %w", c.ID, err)
	}
	w.committed(ctx, "companies", "delete", c.ID, c.Row, readers.CompaniesKey)
	return nil
}
