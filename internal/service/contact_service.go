package service

import (
	"context"
	"fmt"

	"github.com/gridcrm/gridcrm-backend/internal/join"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/writers"
)

// ContactService manages contacts, contact links, and the linked-contact
// join for opportunity views.
type ContactService struct {
	contacts  *readers.Contacts
	companies *readers.Companies
	writer    *writers.Contacts
}

func NewContactService(contacts *readers.Contacts, companies *readers.Companies, w *writers.Contacts) *ContactService {
	return &ContactService{contacts: contacts, companies: companies, writer: w}
}

func (s *ContactService) List(ctx context.Context) []models.Contact {
	return s.contacts.List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id string) (models.Contact, bool) {
	return s.contacts.Get(ctx, id)
}

func (s *ContactService) Search(ctx context.Context, q string) []models.Contact {
	return s.contacts.Search(ctx, q)
}

func (s *ContactService) Page(ctx context.Context, page, size int) []models.Contact {
	return s.contacts.Page(ctx, page, size)
}

func (s *ContactService) ForCompany(ctx context.Context, companyID string) []models.Contact {
	return s.contacts.ForCompany(ctx, companyID)
}

// LinkedContacts resolves the contacts attached to an opportunity, enriched
// with company display names and photos recovered from the prospecting
// imports. Join misses come back as empty fields.
func (s *ContactService) LinkedContacts(ctx context.Context, opportunityID string) []models.EnrichedContact {
	return join.ResolveLinkedContacts(
		opportunityID,
		s.contacts.Links(ctx),
		s.contacts.List(ctx),
		s.contacts.Potentials(ctx),
		s.companies.List(ctx),
	)
}

func (s *ContactService) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	if c.Name == "" {
		return models.Contact{}, fmt.Errorf("contact name is required")
	}
	return s.writer.Create(ctx, c)
}

func (s *ContactService) Update(ctx context.Context, c models.Contact) error {
	current, ok := s.contacts.Get(ctx, c.ID)
	if !ok {
		return fmt.Errorf("contact %s not found", c.ID)
	}
	c.Row = current.Row
	if c.CreatedAt == "" {
		c.CreatedAt = current.CreatedAt
	}
	return s.writer.Update(ctx, c)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	current, ok := s.contacts.Get(ctx, id)
	if !ok {
		return fmt.Errorf("contact %s not found", id)
	}
	return s.writer.Delete(ctx, current)
}

// Link attaches a contact to an opportunity.
func (s *ContactService) Link(ctx context.Context, opportunityID, contactID, role string) error {
	if _, ok := s.contacts.Get(ctx, contactID); !ok {
		return fmt.Errorf("contact %s not found", contactID)
	}
	return s.writer.Link(ctx, models.ContactLink{
		ParentID:  opportunityID,
		ContactID: contactID,
		Role:      role,
	})
}

// Unlink deactivates the link between a contact and an opportunity.
func (s *ContactService) Unlink(ctx context.Context, opportunityID, contactID string) error {
	for _, l := range s.contacts.Links(ctx) {
		if l.ParentID == opportunityID && l.ContactID == contactID && l.Active {
			return s.writer.Unlink(ctx, l)
		}
	}
	return fmt.Errorf("no active link for contact %s on %s", contactID, opportunityID)
}
