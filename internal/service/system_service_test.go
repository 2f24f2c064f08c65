package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcrm/gridcrm-backend/internal/models"
)

func TestStatusTracksWrites(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	assert.Empty(t, e.system.Status().LastWriteAt, "no writes yet")

	_, err := e.companies.Create(ctx, models.Company{Name: "Initech"})
	require.NoError(t, err)

	assert.NotEmpty(t, e.system.Status().LastWriteAt)
}

func TestInvalidate(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	e.companies.List(ctx)
	require.Equal(t, 1, e.src.Reads("Companies"))

	// Targeted invalidation forces a refetch of just that dataset.
	e.system.Invalidate("companies")
	e.companies.List(ctx)
	assert.Equal(t, 2, e.src.Reads("Companies"))

	// Wildcard clears everything, the write stamp included.
	_, err := e.companies.Create(ctx, models.Company{Name: "Initech"})
	require.NoError(t, err)
	e.system.Invalidate("")
	assert.Empty(t, e.system.Status().LastWriteAt)
}

func TestAuditWithoutRepository(t *testing.T) {
	e := newEnv()
	entries, err := e.system.Audit(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, entries)
}
