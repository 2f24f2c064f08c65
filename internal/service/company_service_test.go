package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcrm/gridcrm-backend/internal/models"
)

func TestCompanyCreateRequiresName(t *testing.T) {
	e := newEnv()
	_, err := e.companies.Create(context.Background(), models.Company{})
	require.Error(t, err)
}

func TestCompanyCreateThenList(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	// Warm the cache, then write. The write must invalidate so the next
	// List sees the new row.
	before := e.companies.List(ctx)
	require.Len(t, before, 2)

	created, err := e.companies.Create(ctx, models.Company{Name: "Initech"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	after := e.companies.List(ctx)
	require.Len(t, after, 3)
	assert.Equal(t, "Initech", after[2].Name)
}

func TestCompanyUpdateReresolvesRow(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	// A record read before another mutation carries a stale row index; the
	// service re-resolves it from the current read before writing.
	stale, ok := e.companies.Get(ctx, "co2")
	require.True(t, ok)
	stale.Row = 99

	stale.Notes = "renewal at risk"
	require.NoError(t, e.companies.Update(ctx, stale))

	got, ok := e.companies.Get(ctx, "co2")
	require.True(t, ok)
	assert.Equal(t, "renewal at risk", got.Notes)
	assert.Equal(t, 3, got.Row, "row re-resolved from the live table")
}

func TestCompanyUpdateUnknown(t *testing.T) {
	e := newEnv()
	e.seed()
	err := e.companies.Update(context.Background(), models.Company{ID: "co99"})
	require.Error(t, err)
}

func TestCompanyDelete(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	require.NoError(t, e.companies.Delete(ctx, "co1"))

	if _, ok := e.companies.Get(ctx, "co1"); ok {
		t.Fatal("deleted company still visible")
	}
	// The surviving record's row index reflects the shifted sheet.
	got, ok := e.companies.Get(ctx, "co2")
	require.True(t, ok)
	assert.Equal(t, 2, got.Row)
}
