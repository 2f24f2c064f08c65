package service

import (
	"time"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/pkg/logger"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
	"github.com/gridcrm/gridcrm-backend/internal/writers"
)

// env wires every service over a fake sheet for tests.
type env struct {
	src   *sheets.Fake
	store *cache.Store

	companies     *CompanyService
	contacts      *ContactService
	opportunities *OpportunityService
	activity      *ActivityService
	dashboard     *DashboardService
	system        *SystemService
}

func newEnv() *env {
	src := sheets.NewFake()
	store := cache.NewStore(time.Minute, nil)
	log := logger.StdLogger()

	companiesR := readers.NewCompanies(store, src, log)
	contactsR := readers.NewContacts(store, src, log)
	oppsR := readers.NewOpportunities(store, src, log)
	interactionsR := readers.NewInteractions(store, src, log)
	announcementsR := readers.NewAnnouncements(store, src, log)
	weeklyR := readers.NewWeekly(store, src, log)
	systemR := readers.NewSystem(store, src, log)

	d := writers.Deps{Source: src, Cache: store, Log: log}

	e := &env{src: src, store: store}
	e.companies = NewCompanyService(companiesR, writers.NewCompanies(d))
	e.contacts = NewContactService(contactsR, companiesR, writers.NewContacts(d))
	e.opportunities = NewOpportunityService(oppsR, writers.NewOpportunities(d))
	e.activity = NewActivityService(
		interactionsR, weeklyR, announcementsR, oppsR,
		writers.NewInteractions(d), writers.NewWeekly(d), writers.NewAnnouncements(d),
	)
	e.dashboard = NewDashboardService(companiesR, e.contacts, oppsR, e.activity)
	e.system = NewSystemService(systemR, store, nil)
	return e
}

// seed loads a small consistent CRM across every tab.
func (e *env) seed() {
	e.src.SetTab("Companies", [][]string{
		{"ID", "Name", "Industry", "Website", "Owner", "Notes", "CreatedAt"},
		{"co1", "ACME Inc", "Manufacturing", "", "sam@crm.test", "", "2026-01-01"},
		{"co2", "Globex Corp", "Energy", "", "lee@crm.test", "", "2026-01-05"},
	})
	e.src.SetTab("Contacts", [][]string{
		{"ID", "Name", "Email", "Phone", "Title", "CompanyID", "PhotoURL", "CreatedAt"},
		{"ct1", "Jane Doe", "jane@acme.test", "", "VP Eng", "co1", "", "2026-01-02"},
		{"ct2", "John Roe", "john@acme.test", "", "CTO", "co1", "https://img/john.jpg", "2026-01-03"},
	})
	e.src.SetTab("PotentialContacts", [][]string{
		{"Name", "CompanyName", "PhotoURL", "SourceURL"},
		{"Jane Doe", "ACME Co., Ltd.", "https://img/jane.jpg", "https://profiles/jane"},
	})
	e.src.SetTab("ContactLinks", [][]string{
		{"ParentID", "ContactID", "Role", "Active"},
		{"opp1", "ct1", "champion", "TRUE"},
		{"opp1", "ct2", "buyer", "TRUE"},
	})
	e.src.SetTab("Opportunities", [][]string{
		{"ID", "CompanyID", "Title", "Stage", "Amount", "Owner", "CreatedAt", "UpdatedAt"},
		{"opp1", "co1", "Renewal", "negotiation", "50000", "sam@crm.test", "2026-01-10", "2026-02-01"},
		{"opp2", "co1", "Expansion", "closed_lost", "90000", "sam@crm.test", "2026-01-11", "2026-01-20"},
	})
	e.src.SetTab("Interactions", [][]string{
		{"ID", "CompanyID", "ContactID", "Kind", "Summary", "OccurredAt", "CreatedAt"},
		{"in1", "co1", "ct1", "call", "intro call", "2026-02-10", "2026-02-10"},
	})
	e.src.SetTab("Weekly", [][]string{
		{"ID", "CompanyID", "WeekOf", "Author", "Highlights", "CreatedAt"},
		{"wk1", "co1", "2026-02-02", "sam@crm.test", "good momentum", "2026-02-02"},
	})
	e.src.SetTab("Announcements", [][]string{
		{"ID", "Title", "Body", "Author", "Pinned", "UpdatedAt"},
	})
}
