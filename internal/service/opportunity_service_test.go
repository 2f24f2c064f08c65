package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcrm/gridcrm-backend/internal/models"
)

func TestOpportunityListOrder(t *testing.T) {
	e := newEnv()
	e.seed()

	got := e.opportunities.List(context.Background())
	require.Len(t, got, 2)
	// Sorted by update time, newest first.
	assert.Equal(t, "opp1", got[0].ID)
	assert.Equal(t, "opp2", got[1].ID)
}

func TestOpportunityCreateValidation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.opportunities.Create(ctx, models.Opportunity{CompanyID: "co1"})
	require.Error(t, err, "title required")

	_, err = e.opportunities.Create(ctx, models.Opportunity{Title: "New deal"})
	require.Error(t, err, "company required")
}

func TestSetStage(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	require.NoError(t, e.opportunities.SetStage(ctx, "opp1", models.StageClosedWon))

	got, ok := e.opportunities.Get(ctx, "opp1")
	require.True(t, ok)
	assert.Equal(t, models.StageClosedWon, got.Stage)
	assert.False(t, got.Open())

	err := e.opportunities.SetStage(ctx, "opp99", "negotiation")
	require.Error(t, err)
}
