package writers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
)

func TestContactsLink(t *testing.T) {
	f, d := newFixture()
	w := NewContacts(d)

	err := w.Link(context.Background(), models.ContactLink{
		ParentID: "opp1", ContactID: "ct1", Role: "champion",
	})
	require.NoError(t, err)

	rows := f.src.Tabs["ContactLinks"]
	require.Len(t, rows, 1)
	assert.Equal(t, "opp1", rows[0][0])
	assert.Equal(t, "TRUE", rows[0][3], "links append active")

	_, ok := f.store.LastWriteTimestamp()
	assert.True(t, ok)
	assert.Equal(t, []string{"contactLinks"}, f.events)
}

func TestContactsUnlinkDeactivatesInPlace(t *testing.T) {
	f, d := newFixture()
	f.src.SetTab("ContactLinks", [][]string{
		{"ParentID", "ContactID", "Role", "Active"},
		{"opp1", "ct1", "champion", "TRUE"},
		{"opp1", "ct2", "buyer", "TRUE"},
	})

	w := NewContacts(d)
	err := w.Unlink(context.Background(), models.ContactLink{
		ParentID: "opp1", ContactID: "ct1", Role: "champion", Row: 2,
	})
	require.NoError(t, err)

	rows := f.src.Tabs["ContactLinks"]
	// The row stays; only the active flag flips. Row count is unchanged so
	// other links' row indexes remain valid.
	require.Len(t, rows, 3)
	assert.Equal(t, "FALSE", rows[1][3])
	assert.Equal(t, "TRUE", rows[2][3], "other link untouched")
}

func TestContactsUnlinkRequiresRow(t *testing.T) {
	_, d := newFixture()
	w := NewContacts(d)
	err := w.Unlink(context.Background(), models.ContactLink{ContactID: "ct1"})
	require.Error(t, err)
}

func TestContactsCreateInvalidatesOnlyContacts(t *testing.T) {
	f, d := newFixture()
	f.store.Set(readers.ContactsKey, []models.Contact{})
	f.store.Set(readers.CompaniesKey, []models.Company{})

	w := NewContacts(d)
	_, err := w.Create(context.Background(), models.Contact{Name: "Jane Doe"})
	require.NoError(t, err)

	_, ok := f.store.Get(readers.ContactsKey)
	assert.False(t, ok)
	_, ok = f.store.Get(readers.CompaniesKey)
	assert.True(t, ok)
}
