package writers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Contacts writes the Contacts and ContactLinks tabs.
type Contacts struct {
	Deps
}

func NewContacts(d Deps) *Contacts {
	return &Contacts{Deps: d}
}

func (w *Contacts) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt == "" {
		c.CreatedAt = nowCell()
	}
	if err := w.Source.Write(ctx, readers.ContactsRange, [][]string{readers.EncodeContact(c)}, sheets.Append); err != nil {
		return models.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	w.committed(ctx, "contacts", "create", c.ID, 0, readers.ContactsKey)
	return c, nil
}

func (w *Contacts) Update(ctx context.Context, c models.Contact) error {
	if c.Row < 2 {
		return fmt.Errorf("update contact %s: no row index", c.ID)
	}
	ref := readers.ContactsRange.Row(c.Row)
	if err := w.Source.Write(ctx, ref, [][]string{readers.EncodeContact(c)}, sheets.Update); err != nil {
		return fmt.Errorf("update contact %s: %w", c.ID, err)
	}
	w.committed(ctx, "contacts", "update", c.ID, c.Row, readers.ContactsKey)
	return nil
}

func (w *Contacts) Delete(ctx context.Context, c models.Contact) error {
	if c.Row < 2 {
		return fmt.Errorf("delete contact %s: no row index", c.ID)
	}
	if err := w.Source.DeleteRows(ctx, readers.ContactsRange.Sheet, c.Row, c.Row); err != nil {
		return fmt.Errorf("delete contact %s: %w", c.ID, err)
	}
	w.committed(ctx, "contacts", "delete", c.ID, c.Row, readers.ContactsKey)
	return nil
}

// Link attaches an official contact to a parent record (an opportunity).
func (w *Contacts) Link(ctx context.Context, l models.ContactLink) error {
	l.Active = true
	if err := w.Source.Write(ctx, readers.ContactLinksRange, [][]string{readers.EncodeContactLink(l)}, sheets.Append); err != nil {
		return fmt.Errorf("link contact %s: %w", l.ContactID, err)
	}
	w.committed(ctx, "contactLinks", "create", l.ContactID, 0, readers.ContactLinksKey)
	return nil
}

// Unlink deactivates a link in place rather than deleting its row, so
// other links' row indexes stay valid.
func (w *Contacts) Unlink(ctx context.Context, l models.ContactLink) error {
	if l.Row < 2 {
		return fmt.Errorf("unlink contact %s: no row index", l.ContactID)
	}
	l.Active = false
	ref := readers.ContactLinksRange.Row(l.Row)
	if err := w.Source.Write(ctx, ref, [][]string{readers.EncodeContactLink(l)}, sheets.Update); err != nil {
		return fmt.Errorf("unlink contact %s: %w", l.ContactID, err)
	}
	w.committed(ctx, "contactLinks", "update", l.ContactID, l.Row, readers.ContactLinksKey)
	return nil
}
