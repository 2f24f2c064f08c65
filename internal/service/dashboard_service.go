package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gridcrm/gridcrm-backend/internal/join"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
)

// DashboardService assembles the per-company dashboard: open opportunities,
// linked contacts, and last-activity timestamps joined across every entity
// table. One unavailable feed degrades to an empty section; the dashboard
// never hard-fails on a single feed.
type DashboardService struct {
	companies *readers.Companies
	contacts  *ContactService
	opps      *readers.Opportunities
	activity  *ActivityService
}

func NewDashboardService(
	companies *readers.Companies,
	contacts *ContactService,
	opps *readers.Opportunities,
	activity *ActivityService,
) *DashboardService {
	return &DashboardService{
		companies: companies,
		contacts:  contacts,
		opps:      opps,
		activity:  activity,
	}
}

// Overview builds the dashboard for every company. The source feeds are
// warmed concurrently; each lands in the shared cache, so the join work
// below runs against in-process data.
func (s *DashboardService) Overview(ctx context.Context) []models.CompanyDashboard {
	companies := s.fanOut(ctx)

	opps := s.opps.List(ctx)
	oppsByCompany := make(map[string][]models.Opportunity)
	for _, o := range opps {
		if o.Open() {
			oppsByCompany[o.CompanyID] = append(oppsByCompany[o.CompanyID], o)
		}
	}
	lastActivity := s.activity.LastActivityByCompany(ctx)

	out := make([]models.CompanyDashboard, 0, len(companies))
	for _, c := range companies {
		d := models.CompanyDashboard{
			Company:           c,
			OpenOpportunities: oppsByCompany[c.ID],
			LastActivityAt:    lastActivityCell(lastActivity, c),
		}
		for _, o := range d.OpenOpportunities {
			d.Contacts = append(d.Contacts, s.contacts.LinkedContacts(ctx, o.ID)...)
		}
		out = append(out, d)
	}
	return out
}

// ForCompany builds the dashboard for one company.
func (s *DashboardService) ForCompany(ctx context.Context, companyID string) (models.CompanyDashboard, bool) {
	c, ok := s.companies.Get(ctx, companyID)
	if !ok {
		return models.CompanyDashboard{}, false
	}
	lastActivity := s.activity.LastActivityByCompany(ctx)
	d := models.CompanyDashboard{
		Company:           c,
		OpenOpportunities: s.opps.ForCompany(ctx, companyID, true),
		LastActivityAt:    lastActivityCell(lastActivity, c),
	}
	for _, o := range d.OpenOpportunities {
		d.Contacts = append(d.Contacts, s.contacts.LinkedContacts(ctx, o.ID)...)
	}
	return d, true
}

// fanOut warms every feed concurrently and returns the company list.
// Readers swallow transport failures, so the group never aborts early; the
// errgroup only bounds the goroutines to the request context.
func (s *DashboardService) fanOut(ctx context.Context) []models.Company {
	var companies []models.Company
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		companies = s.companies.List(gctx)
		return nil
	})
	g.Go(func() error {
		s.opps.List(gctx)
		return nil
	})
	g.Go(func() error {
		s.contacts.List(gctx)
		s.contacts.contacts.Links(gctx)
		s.contacts.contacts.Potentials(gctx)
		return nil
	})
	g.Go(func() error {
		s.activity.interactions.List(gctx)
		s.activity.weekly.List(gctx)
		return nil
	})
	_ = g.Wait()
	return companies
}

// lastActivityCell renders the aggregated timestamp, falling back to the
// company's creation time when no events exist.
func lastActivityCell(lastActivity map[string]time.Time, c models.Company) string {
	if t, ok := lastActivity[c.ID]; ok {
		return t.UTC().Format(time.RFC3339)
	}
	if t, ok := join.ParseTime(c.CreatedAt); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return ""
}
