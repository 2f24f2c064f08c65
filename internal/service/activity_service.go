package service

import (
	"context"
	"time"

	"github.com/gridcrm/gridcrm-backend/internal/join"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/writers"
)

// ActivityService manages the timestamped event streams (interactions,
// weekly entries, announcements) and the last-activity aggregation over
// them.
type ActivityService struct {
	interactions  *readers.Interactions
	weekly        *readers.Weekly
	announcements *readers.Announcements
	opportunities *readers.Opportunities

	interactionWriter  *writers.Interactions
	weeklyWriter       *writers.Weekly
	announcementWriter *writers.Announcements
}

func NewActivityService(
	interactions *readers.Interactions,
	weekly *readers.Weekly,
	announcements *readers.Announcements,
	opportunities *readers.Opportunities,
	interactionWriter *writers.Interactions,
	weeklyWriter *writers.Weekly,
	announcementWriter *writers.Announcements,
) *ActivityService {
	return &ActivityService{
		interactions:       interactions,
		weekly:             weekly,
		announcements:      announcements,
		opportunities:      opportunities,
		interactionWriter:  interactionWriter,
		weeklyWriter:       weeklyWriter,
		announcementWriter: announcementWriter,
	}
}

func (s *ActivityService) Interactions(ctx context.Context) []models.Interaction {
	return s.interactions.List(ctx)
}

func (s *ActivityService) InteractionsForCompany(ctx context.Context, companyID string) []models.Interaction {
	return s.interactions.ForCompany(ctx, companyID)
}

func (s *ActivityService) Announcements(ctx context.Context) []models.Announcement {
	return s.announcements.List(ctx)
}

func (s *ActivityService) WeeklyEntries(ctx context.Context) []models.WeeklyEntry {
	return s.weekly.List(ctx)
}

func (s *ActivityService) WeeklyForCompany(ctx context.Context, companyID string) []models.WeeklyEntry {
	return s.weekly.ForCompany(ctx, companyID)
}

func (s *ActivityService) LogInteraction(ctx context.Context, in models.Interaction) (models.Interaction, error) {
	return s.interactionWriter.Create(ctx, in)
}

func (s *ActivityService) DeleteInteraction(ctx context.Context, id string) error {
	for _, in := range s.interactions.List(ctx) {
		if in.ID == id {
			return s.interactionWriter.Delete(ctx, in)
		}
	}
	return errNotFound("interaction", id)
}

func (s *ActivityService) PostAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	return s.announcementWriter.Create(ctx, a)
}

// PinAnnouncement toggles the pinned flag in place.
func (s *ActivityService) PinAnnouncement(ctx context.Context, id string, pinned bool) error {
	a, ok := s.announcements.Get(ctx, id)
	if !ok {
		return errNotFound("announcement", id)
	}
	a.Pinned = pinned
	return s.announcementWriter.Update(ctx, a)
}

func (s *ActivityService) FileWeekly(ctx context.Context, e models.WeeklyEntry) (models.WeeklyEntry, error) {
	return s.weeklyWriter.Create(ctx, e)
}

// LastActivityByCompany aggregates the latest activity timestamp per
// company across interactions, weekly entries, and opportunity updates.
// Companies with no valid events are absent; callers fall back to the
// company's creation time.
func (s *ActivityService) LastActivityByCompany(ctx context.Context) map[string]time.Time {
	var interactionEvents []join.Event
	for _, in := range s.interactions.List(ctx) {
		interactionEvents = append(interactionEvents, join.Event{EntityID: in.CompanyID, At: in.OccurredAt})
	}
	var weeklyEvents []join.Event
	for _, w := range s.weekly.List(ctx) {
		weeklyEvents = append(weeklyEvents, join.Event{EntityID: w.CompanyID, At: w.WeekOf})
	}
	var oppEvents []join.Event
	for _, o := range s.opportunities.List(ctx) {
		oppEvents = append(oppEvents, join.Event{EntityID: o.CompanyID, At: o.UpdatedAt})
	}
	return join.ComputeLastActivity(interactionEvents, weeklyEvents, oppEvents)
}
