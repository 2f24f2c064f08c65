package readers

import (
	"context"
	"log/slog"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Contacts tab layout.
const (
	contactColID = iota
	contactColName
	contactColEmail
	contactColPhone
	contactColTitle
	contactColCompanyID
	contactColPhotoURL
	contactColCreatedAt
)

// PotentialContacts tab layout.
const (
	potentialColName = iota
	potentialColCompanyName
	potentialColPhotoURL
	potentialColSourceURL
)

// ContactLinks tab layout.
const (
	linkColParentID = iota
	linkColContactID
	linkColRole
	linkColActive
)

const (
	ContactsKey          = "contacts"
	PotentialContactsKey = "potentialContacts"
	ContactLinksKey      = "contactLinks"
)

var (
	ContactsRange          = sheets.Range{Sheet: "Contacts", Cells: "A2:H"}
	PotentialContactsRange = sheets.Range{Sheet: "PotentialContacts", Cells: "A2:D"}
	ContactLinksRange      = sheets.Range{Sheet: "ContactLinks", Cells: "A2:D"}
)

// Contacts reads the official contact list plus the two auxiliary tables
// the linked-contact join needs: prospecting imports and link records.
type Contacts struct {
	store *cache.Store
	src   sheets.Source
	log   *slog.Logger
}

func NewContacts(store *cache.Store, src sheets.Source, log *slog.Logger) *Contacts {
	return &Contacts{store: store, src: src, log: log}
}

func (r *Contacts) List(ctx context.Context) []models.Contact {
	recs, err := cache.FetchAndCache(ctx, r.store, ContactsKey, r.src, ContactsRange, parseContact, nil)
	if err != nil {
		r.log.Error("contacts fetch failed", "error", err)
		return nil
	}
	return recs
}

func (r *Contacts) Get(ctx context.Context, id string) (models.Contact, bool) {
	for _, c := range r.List(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

// ForCompany returns the official contacts attached to a company.
func (r *Contacts) ForCompany(ctx context.Context, companyID string) []models.Contact {
	var out []models.Contact
	for _, c := range r.List(ctx) {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out
}

// Search returns contacts whose name, email, or title contains q.
func (r *Contacts) Search(ctx context.Context, q string) []models.Contact {
	if q == "" {
		return r.List(ctx)
	}
	var out []models.Contact
	for _, c := range r.List(ctx) {
		if matches(c.Name, q) || matches(c.Email, q) || matches(c.Title, q) {
			out = append(out, c)
		}
	}
	return out
}

func (r *Contacts) Page(ctx context.Context, page, size int) []models.Contact {
	return paginate(r.List(ctx), page, size)
}

// Potentials returns the prospecting-import table.
func (r *Contacts) Potentials(ctx context.Context) []models.PotentialContact {
	recs, err := cache.FetchAndCache(ctx, r.store, PotentialContactsKey, r.src, PotentialContactsRange, parsePotential, nil)
	if err != nil {
		r.log.Error("potential contacts fetch failed", "error", err)
		return nil
	}
	return recs
}

// Links returns the contact-link table.
func (r *Contacts) Links(ctx context.Context) []models.ContactLink {
	recs, err := cache.FetchAndCache(ctx, r.store, ContactLinksKey, r.src, ContactLinksRange, parseLink, nil)
	if err != nil {
		r.log.Error("contact links fetch failed", "error", err)
		return nil
	}
	return recs
}

func parseContact(row []string, idx int) models.Contact {
	return models.Contact{
		ID:        col(row, contactColID),
		Name:      col(row, contactColName),
		Email:     col(row, contactColEmail),
		Phone:     col(row, contactColPhone),
		Title:     col(row, contactColTitle),
		CompanyID: col(row, contactColCompanyID),
		PhotoURL:  col(row, contactColPhotoURL),
		CreatedAt: col(row, contactColCreatedAt),
		Row:       idx + 1,
	}
}

func parsePotential(row []string, idx int) models.PotentialContact {
	return models.PotentialContact{
		Name:        col(row, potentialColName),
		CompanyName: col(row, potentialColCompanyName),
		PhotoURL:    col(row, potentialColPhotoURL),
		SourceURL:   col(row, potentialColSourceURL),
		Row:         idx + 1,
	}
}

func parseLink(row []string, idx int) models.ContactLink {
	return models.ContactLink{
		ParentID:  col(row, linkColParentID),
		ContactID: col(row, linkColContactID),
		Role:      col(row, linkColRole),
		Active:    colBool(row, linkColActive),
		Row:       idx + 1,
	}
}

func EncodeContact(c models.Contact) []string {
	return []string{c.ID, c.Name, c.Email, c.Phone, c.Title, c.CompanyID, c.PhotoURL, c.CreatedAt}
}

func EncodeContactLink(l models.ContactLink) []string {
	return []string{l.ParentID, l.ContactID, l.Role, boolCell(l.Active)}
}
