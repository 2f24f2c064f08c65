// Package cache holds the process-wide read cache: a keyed store of fetched
// datasets with a shared freshness window, and the fetch-parse-sort-cache
// orchestrator every entity reader goes through.
package cache

import (
	"sync"
	"time"

	"github.com/gridcrm/gridcrm-backend/internal/pkg/metrics"
)

// lastWriteKey is the reserved key stamped by writers after a committed
// mutation. Cleared by InvalidateAll like any other key.
const lastWriteKey = "lastWrite"

// Entry is one cached dataset. Value is immutable once stored; a refresh
// replaces the whole entry.
type Entry struct {
	Value     any
	FetchedAt time.Time
}

// Invalidator is the write-side view of the store. Every writer takes this
// interface and calls it after a committed mutation.
type Invalidator interface {
	Invalidate(key string)
	InvalidateAll()
	MarkWrite()
}

// Store maps cache keys to entries. Constructed once per process with an
// injected clock and freshness window; guarded by a RWMutex. Operations
// cannot fail; absence is a normal outcome.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	window  time.Duration
	now     func() time.Time
}

// NewStore returns a store with the given freshness window. A nil clock
// defaults to time.Now. If window <= 0 every entry is immediately stale and
// reads always hit the source.
func NewStore(window time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		entries: make(map[string]Entry),
		window:  window,
		now:     now,
	}
}

// Get returns the entry for key, fresh or stale, and whether it exists.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

// Fresh reports whether the entry is inside the freshness window.
func (s *Store) Fresh(e Entry) bool {
	return s.window > 0 && s.now().Sub(e.FetchedAt) < s.window
}

// Set stores value under key, stamped with the current clock, replacing any
// prior entry.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = Entry{Value: value, FetchedAt: s.now()}
}

// Invalidate removes the entry for key. Unknown keys are a no-op.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// InvalidateAll removes every entry, the last-write stamp included.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]Entry)
}

// MarkWrite stamps the reserved last-write key with the current clock.
func (s *Store) MarkWrite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.entries[lastWriteKey] = Entry{Value: now, FetchedAt: now}
}

// LastWriteTimestamp returns the time of the most recent committed write,
// if any writer has stamped one since the last wildcard invalidation.
func (s *Store) LastWriteTimestamp() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[lastWriteKey]
	if !ok {
		return time.Time{}, false
	}
	t, ok := e.Value.(time.Time)
	return t, ok
}

// getFresh is the orchestrator's hit path; records hit/miss metrics.
func (s *Store) getFresh(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || !s.Fresh(e) {
		metrics.CacheMissesTotal.WithLabelValues(key).Inc()
		return nil, false
	}
	metrics.CacheHitsTotal.WithLabelValues(key).Inc()
	return e.Value, true
}
