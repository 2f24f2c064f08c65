package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/gridcrm/gridcrm-backend/internal/models"
)

const auditSchema = `
CREATE TABLE IF NOT EXISTS audit_log (
	id TEXT PRIMARY KEY,
	dataset TEXT NOT NULL,
	action TEXT NOT NULL,
	entity_id TEXT NOT NULL DEFAULT '',
	row_index INTEGER NOT NULL DEFAULT 0,
	actor TEXT NOT NULL DEFAULT '',
	at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_log_at ON audit_log(at);
`

// SQLiteRepository implements AuditRepository using SQLite.
type SQLiteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository opens (or creates) the audit database at dbPath.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	if _, err := db.Exec(auditSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create audit schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Record(ctx context.Context, e *models.AuditEntry) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO audit_log (id, dataset, action, entity_id, row_index, actor, at)
		VALUES (:id, :dataset, :action, :entity_id, :row_index, :actor, :at)`, e)
	if err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]*models.AuditEntry, error) {
	if limit < 1 {
		limit = 50
	}
	var out []*models.AuditEntry
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, dataset, action, entity_id, row_index, actor, at
		FROM audit_log ORDER BY at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return out, nil
}
