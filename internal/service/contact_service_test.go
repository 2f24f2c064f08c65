package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedContacts(t *testing.T) {
	e := newEnv()
	e.seed()

	got := e.contacts.LinkedContacts(context.Background(), "opp1")
	require.Len(t, got, 2)
	assert.Equal(t, "ct1", got[0].ID)
	assert.Equal(t, "ACME Inc", got[0].CompanyName)
	assert.Equal(t, "https://img/jane.jpg", got[0].PhotoURL)
	// John's own photo wins over the prospecting import.
	assert.Equal(t, "https://img/john.jpg", got[1].PhotoURL)
}

func TestLinkUnknownContact(t *testing.T) {
	e := newEnv()
	e.seed()
	err := e.contacts.Link(context.Background(), "opp1", "ct99", "champion")
	require.Error(t, err)
}

func TestUnlinkRemovesFromJoin(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	require.NoError(t, e.contacts.Unlink(ctx, "opp1", "ct2"))

	got := e.contacts.LinkedContacts(ctx, "opp1")
	require.Len(t, got, 1)
	assert.Equal(t, "ct1", got[0].ID)
}

func TestUnlinkWithoutActiveLink(t *testing.T) {
	e := newEnv()
	e.seed()
	err := e.contacts.Unlink(context.Background(), "opp2", "ct1")
	require.Error(t, err)
}

func TestLinkThenResolve(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	require.NoError(t, e.contacts.Link(ctx, "opp2", "ct1", "sponsor"))

	got := e.contacts.LinkedContacts(ctx, "opp2")
	require.Len(t, got, 1)
	assert.Equal(t, "sponsor", got[0].LinkRole)
}
