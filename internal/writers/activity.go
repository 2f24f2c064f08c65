package writers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Interactions writes the Interactions tab.
type Interactions struct {
	Deps
}

func NewInteractions(d Deps) *Interactions {
	return &Interactions{Deps: d}
}

func (w *Interactions) Create(ctx context.Context, in models.Interaction) (models.Interaction, error) {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt == "" {
		in.CreatedAt = nowCell()
	}
	if in.OccurredAt == "" {
		in.OccurredAt = in.CreatedAt
	}
	if err := w.Source.Write(ctx, readers.InteractionsRange, [][]string{readers.EncodeInteraction(in)}, sheets.Append); err != nil {
		return models.Interaction{}, fmt.Errorf("create interaction: %w", err)
	}
	w.committed(ctx, "interactions", "create", in.ID, 0, readers.InteractionsKey)
	return in, nil
}

func (w *Interactions) Delete(ctx context.Context, in models.Interaction) error {
	if in.Row < 2 {
		return fmt.Errorf("delete interaction %s: no row index", in.ID)
	}
	if err := w.Source.DeleteRows(ctx, readers.InteractionsRange.Sheet, in.Row, in.Row); err != nil {
		return fmt.Errorf("delete interaction %s: %w", in.ID, err)
	}
	w.committed(ctx, "interactions", "delete", in.ID, in.Row, readers.InteractionsKey)
	return nil
}

// Announcements writes the Announcements tab.
type Announcements struct {
	Deps
}

func NewAnnouncements(d Deps) *Announcements {
	return &Announcements{Deps: d}
}

func (w *Announcements) Create(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.UpdatedAt = nowCell()
	if err := w.Source.Write(ctx, readers.AnnouncementsRange, [][]string{readers.EncodeAnnouncement(a)}, sheets.Append); err != nil {
		return models.Announcement{}, fmt.Errorf("create announcement: %w", err)
	}
	w.committed(ctx, "announcements", "create", a.ID, 0, readers.AnnouncementsKey)
	return a, nil
}

// Update overwrites the announcement's row (edits and pin toggles both go
// through here) and stamps UpdatedAt.
func (w *Announcements) Update(ctx context.Context, a models.Announcement) error {
	if a.Row < 2 {
		return fmt.Errorf("update announcement %s: no row index", a.ID)
	}
	a.UpdatedAt = nowCell()
	ref := readers.AnnouncementsRange.Row(a.Row)
	if err := w.Source.Write(ctx, ref, [][]string{readers.EncodeAnnouncement(a)}, sheets.Update); err != nil {
		return fmt.Errorf("update announcement %s: %w", a.ID, err)
	}
	w.committed(ctx, "announcements", "update", a.ID, a.Row, readers.AnnouncementsKey)
	return nil
}

// Weekly writes the Weekly tab.
type Weekly struct {
	Deps
}

func NewWeekly(d Deps) *Weekly {
	return &Weekly{Deps: d}
}

func (w *Weekly) Create(ctx context.Context, e models.WeeklyEntry) (models.WeeklyEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt == "" {
		e.CreatedAt = nowCell()
	}
	if err := w.Source.Write(ctx, readers.WeeklyRange, [][]string{readers.EncodeWeekly(e)}, sheets.Append); err != nil {
		return models.WeeklyEntry{}, fmt.Errorf("create weekly entry: %w", err)
	}
	w.committed(ctx, "weeklyEntries", "create", e.ID, 0, readers.WeeklyKey)
	return e, nil
}
