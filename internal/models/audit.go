package models

import "time"

// AuditEntry records one committed write against the spreadsheet. The
// spreadsheet stays the system of record; the audit log is advisory.
type AuditEntry struct {
	ID       string    `json:"id" db:"id"`
	Dataset  string    `json:"dataset" db:"dataset"`
	Action   string    `json:"action" db:"action"`
	EntityID string    `json:"entity_id" db:"entity_id"`
	Row      int       `json:"row" db:"row_index"`
	Actor    string    `json:"actor" db:"actor"`
	At       time.Time `json:"at" db:"at"`
}
