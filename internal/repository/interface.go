package repository

import (
	"context"

	"github.com/gridcrm/gridcrm-backend/internal/models"
)

// AuditRepository defines audit-log data access. The spreadsheet is the
// system of record for entities; the audit log only records committed
// writes against it.
type AuditRepository interface {
	Record(ctx context.Context, e *models.AuditEntry) error
	List(ctx context.Context, limit int) ([]*models.AuditEntry, error)
}
