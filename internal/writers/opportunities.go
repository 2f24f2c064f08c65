package writers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Opportunities writes the Opportunities tab.
type Opportunities struct {
	Deps
}

func NewOpportunities(d Deps) *Opportunities {
	return &Opportunities{Deps: d}
}

func (w *Opportunities) Create(ctx context.Context, o models.Opportunity) (models.Opportunity, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt == "" {
		o.CreatedAt = nowCell()
	}
	o.UpdatedAt = nowCell()
	if err := w.Source.Write(ctx, readers.OpportunitiesRange, [][]string{readers.EncodeOpportunity(o)}, sheets.Append); err != nil {
		return models.Opportunity{}, fmt.Errorf("create opportunity: %w", err)
	}
	w.committed(ctx, "opportunities", "create", o.ID, 0, readers.OpportunitiesKey)
	return o, nil
}

// Update overwrites the opportunity's row and stamps UpdatedAt.
func (w *Opportunities) Update(ctx context.Context, o models.Opportunity) error {
	if o.Row < 2 {
		return fmt.Errorf("update opportunity %s: no row index", o.ID)
	}
	o.UpdatedAt = nowCell()
	ref := readers.OpportunitiesRange.Row(o.Row)
	if err := w.Source.Write(ctx, ref, [][]string{readers.EncodeOpportunity(o)}, sheets.Update); err != nil {
		return fmt.Errorf("update opportunity %s: %w", o.ID, err)
	}
	w.committed(ctx, "opportunities", "update", o.ID, o.Row, readers.OpportunitiesKey)
	return nil
}
