package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcrm/gridcrm-backend/internal/models"
)

func TestLastActivityByCompany(t *testing.T) {
	e := newEnv()
	e.seed()

	got := e.activity.LastActivityByCompany(context.Background())
	want := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, got["co1"].Equal(want), "co1 = %v", got["co1"])
	_, ok := got["co2"]
	assert.False(t, ok, "co2 has no events")
}

func TestLogInteractionExtendsLastActivity(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	_, err := e.activity.LogInteraction(ctx, models.Interaction{
		CompanyID: "co2", Kind: "meeting", Summary: "kickoff", OccurredAt: "2026-03-01",
	})
	require.NoError(t, err)

	got := e.activity.LastActivityByCompany(ctx)
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, got["co2"].Equal(want), "co2 = %v", got["co2"])
}

func TestDeleteInteraction(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	require.NoError(t, e.activity.DeleteInteraction(ctx, "in1"))
	assert.Empty(t, e.activity.Interactions(ctx))

	err := e.activity.DeleteInteraction(ctx, "in99")
	require.Error(t, err)
}

func TestPinAnnouncement(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	posted, err := e.activity.PostAnnouncement(ctx, models.Announcement{
		Title: "Q1 targets", Body: "see attached", AuthorEmail: "sam@crm.test",
	})
	require.NoError(t, err)

	require.NoError(t, e.activity.PinAnnouncement(ctx, posted.ID, true))

	got := e.activity.Announcements(ctx)
	require.Len(t, got, 1)
	assert.True(t, got[0].Pinned)

	err = e.activity.PinAnnouncement(ctx, "a99", true)
	require.Error(t, err)
}

func TestFileWeekly(t *testing.T) {
	e := newEnv()
	e.seed()
	ctx := context.Background()

	filed, err := e.activity.FileWeekly(ctx, models.WeeklyEntry{
		CompanyID: "co2", WeekOf: "2026-02-09", AuthorEmail: "lee@crm.test", Highlights: "first contact",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, filed.ID)

	got := e.activity.WeeklyForCompany(ctx, "co2")
	require.Len(t, got, 1)
}
