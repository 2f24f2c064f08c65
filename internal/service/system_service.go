package service

import (
	"context"
	"time"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/repository"
)

// SystemService exposes system config, users, coarse change status, cache
// administration, and the audit log.
type SystemService struct {
	system *readers.System
	store  *cache.Store
	audit  repository.AuditRepository
}

func NewSystemService(system *readers.System, store *cache.Store, audit repository.AuditRepository) *SystemService {
	return &SystemService{system: system, store: store, audit: audit}
}

func (s *SystemService) Config(ctx context.Context) map[string]string {
	return s.system.Config(ctx)
}

func (s *SystemService) Users(ctx context.Context) []models.User {
	return s.system.Users(ctx)
}

// Status reports the time of the most recent committed write, for clients
// polling "has anything changed".
func (s *SystemService) Status() models.Status {
	st := models.Status{}
	if t, ok := s.store.LastWriteTimestamp(); ok {
		st.LastWriteAt = t.UTC().Format(time.RFC3339)
	}
	return st
}

// Invalidate evicts one cache key, or every key when key is empty.
func (s *SystemService) Invalidate(key string) {
	if key == "" {
		s.store.InvalidateAll()
		return
	}
	s.store.Invalidate(key)
}

func (s *SystemService) Audit(ctx context.Context, limit int) ([]*models.AuditEntry, error) {
	if s.audit == nil {
		return nil, nil
	}
	return s.audit.List(ctx, limit)
}
