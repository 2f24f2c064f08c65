package readers

import (
	"context"
	"log/slog"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/join"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Announcements tab layout.
const (
	annColID = iota
	annColTitle
	annColBody
	annColAuthor
	annColPinned
	annColUpdatedAt
)

const AnnouncementsKey = "announcements"

var AnnouncementsRange = sheets.Range{Sheet: "Announcements", Cells: "A2:F"}

// Announcements reads the announcement board: pinned entries first, then by
// update time descending.
type Announcements struct {
	store *cache.Store
	src   sheets.Source
	log   *slog.Logger
}

func NewAnnouncements(store *cache.Store, src sheets.Source, log *slog.Logger) *Announcements {
	return &Announcements{store: store, src: src, log: log}
}

func (r *Announcements) List(ctx context.Context) []models.Announcement {
	recs, err := cache.FetchAndCache(ctx, r.store, AnnouncementsKey, r.src, AnnouncementsRange, parseAnnouncement, AnnouncementLess)
	if err != nil {
		r.log.Error("announcements fetch failed", "error", err)
		return nil
	}
	return recs
}

func (r *Announcements) Get(ctx context.Context, id string) (models.Announcement, bool) {
	for _, a := range r.List(ctx) {
		if a.ID == id {
			return a, true
		}
	}
	return models.Announcement{}, false
}

// AnnouncementLess orders pinned entries first; within each group, later
// updates first. Unparseable timestamps sort last, in sheet order.
func AnnouncementLess(a, b models.Announcement) bool {
	if a.Pinned != b.Pinned {
		return a.Pinned
	}
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

func parseAnnouncement(row []string, idx int) models.Announcement {
	return models.Announcement{
		ID:          col(row, annColID),
		Title:       col(row, annColTitle),
		Body:        col(row, annColBody),
		AuthorEmail: col(row, annColAuthor),
		Pinned:      colBool(row, annColPinned),
		UpdatedAt:   col(row, annColUpdatedAt),
		Row:         idx + 1,
	}
}

func EncodeAnnouncement(a models.Announcement) []string {
	return []string{a.ID, a.Title, a.Body, a.AuthorEmail, boolCell(a.Pinned), a.UpdatedAt}
}
