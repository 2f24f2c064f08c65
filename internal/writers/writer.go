// Package writers holds the write path for each entity tab. A writer
// commits the mutation to the sheet first; only then does it invalidate the
// cache keys whose cached values embed data from the written table, stamp
// the last-write marker, record an audit row, and notify the change feed.
// Write errors always surface to the caller, and a failed write invalidates
// nothing.
//
// Cross-entity invalidation is NOT automatic: a writer must list every key
// its table feeds. Row-indexed updates assume no concurrent writer mutates
// the same tab between row resolution and the update; callers re-resolve
// the row right before writing.
package writers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"log/slog"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// AuditSink records committed writes. The SQLite audit repository
// implements it.
type AuditSink interface {
	Record(ctx context.Context, e *models.AuditEntry) error
}

// Notifier receives the dataset name after a committed write.
type Notifier func(dataset string)

type actorKey struct{}

// WithActor tags the context with the acting user's email (set by the
// actor middleware from the request).
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey{}, email)
}

// ActorFromContext returns the acting user's email, or empty string.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok {
		return v
	}
	return ""
}

// Deps bundles what every writer needs. Audit and Notify may be nil.
type Deps struct {
	Source sheets.Source
	Cache  cache.Invalidator
	Audit  AuditSink
	Notify Notifier
	Log    *slog.Logger
}

// committed runs the post-write protocol for a successful mutation.
func (d Deps) committed(ctx context.Context, dataset, action, entityID string, row int, keys ...string) {
	for _, k := range keys {
		d.Cache.Invalidate(k)
	}
	d.Cache.MarkWrite()

	if d.Audit != nil {
		entry := &models.AuditEntry{
			ID:       uuid.NewString(),
			Dataset:  dataset,
			Action:   action,
			EntityID: entityID,
			Row:      row,
			Actor:    ActorFromContext(ctx),
			At:       time.Now().UTC(),
		}
		if err := d.Audit.Record(ctx, entry); err != nil {
			d.Log.Warn("audit record failed", "dataset", dataset, "action", action, "error", err)
		}
	}
	if d.Notify != nil {
		d.Notify(dataset)
	}
}

// nowCell is the timestamp format written to date cells.
func nowCell() string {
	return time.Now().UTC().Format(time.RFC3339)
}
