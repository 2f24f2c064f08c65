package readers

import (
	"testing"

	"github.com/gridcrm/gridcrm-backend/internal/models"
)

func TestAnnouncementLess(t *testing.T) {
	pinnedOld := models.Announcement{ID: "a", Pinned: true, UpdatedAt: "2026-01-01"}
	pinnedNew := models.Announcement{ID: "b", Pinned: true, UpdatedAt: "2026-02-01"}
	unpinnedNew := models.Announcement{ID: "c", UpdatedAt: "2026-03-01"}
	noDate := models.Announcement{ID: "d", UpdatedAt: "soonish"}

	// Pinned beats unpinned regardless of dates.
	if !AnnouncementLess(pinnedOld, unpinnedNew) {
		t.Error("pinned should sort before unpinned")
	}
	if AnnouncementLess(unpinnedNew, pinnedOld) {
		t.Error("unpinned should not sort before pinned")
	}

	// Within a group, later updates first.
	if !AnnouncementLess(pinnedNew, pinnedOld) {
		t.Error("newer pinned should sort before older pinned")
	}

	// Valid timestamps sort before invalid ones.
	if !AnnouncementLess(unpinnedNew, noDate) {
		t.Error("parseable timestamp should sort before unparseable")
	}
	if AnnouncementLess(noDate, unpinnedNew) {
		t.Error("unparseable timestamp should not sort first")
	}

	// Two invalid timestamps are a tie; the stable sort keeps sheet order.
	other := models.Announcement{ID: "e", UpdatedAt: "later"}
	if AnnouncementLess(noDate, other) || AnnouncementLess(other, noDate) {
		t.Error("two unparseable timestamps should compare equal")
	}
}
