package join

import "github.com/gridcrm/gridcrm-backend/internal/models"

// ResolveLinkedContacts joins the contact-link table against the official
// contact list, the company table, and the potential-contacts table for one
// parent record (an opportunity).
//
// Active links for parentID are resolved to official contacts by ID; the
// company display name is resolved by company ID; when the official record
// has no photo, the originating profile link is recovered by matching
// MatchKey(name, companyName) against the potential-contacts table. Every
// join miss degrades to an empty field, never an error.
func ResolveLinkedContacts(
	parentID string,
	links []models.ContactLink,
	contacts []models.Contact,
	potentials []models.PotentialContact,
	companies []models.Company,
) []models.EnrichedContact {
	contactByID := BuildJoinMap(contacts,
		func(c models.Contact) string { return c.ID },
		func(c models.Contact) models.Contact { return c })
	companyNameByID := BuildJoinMap(companies,
		func(c models.Company) string { return c.ID },
		func(c models.Company) string { return c.Name })
	photoByKey := BuildJoinMap(potentials,
		func(p models.PotentialContact) string { return MatchKey(p.Name, p.CompanyName) },
		func(p models.PotentialContact) string { return p.PhotoURL })

	out := make([]models.EnrichedContact, 0, len(links))
	for _, link := range links {
		if link.ParentID != parentID || !link.Active {
			continue
		}
		c, ok := contactByID[link.ContactID]
		if !ok {
			continue
		}
		companyName := companyNameByID[c.CompanyID]
		if c.PhotoURL == "" {
			c.PhotoURL = photoByKey[MatchKey(c.Name, companyName)]
		}
		out = append(out, models.EnrichedContact{
			Contact:     c,
			CompanyName: companyName,
			LinkRole:    link.Role,
		})
	}
	return out
}
