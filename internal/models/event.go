package models

import "time"

// ChangeEvent is broadcast to WebSocket clients after a committed write so
// dashboards can refetch instead of polling.
type ChangeEvent struct {
	Type      string    `json:"type"`
	Dataset   string    `json:"dataset"`
	Timestamp time.Time `json:"timestamp"`
}
