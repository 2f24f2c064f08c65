package cache

import (
	"testing"
	"time"
)

// fakeClock is an adjustable clock for freshness tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func TestStoreFreshness(t *testing.T) {
	clock := newClock()
	s := NewStore(5*time.Minute, clock.now)

	s.Set("companies", []string{"a"})
	e, ok := s.Get("companies")
	if !ok {
		t.Fatal("expected entry after Set")
	}
	if !s.Fresh(e) {
		t.Error("entry should be fresh immediately after Set")
	}

	clock.advance(4 * time.Minute)
	if e, _ := s.Get("companies"); !s.Fresh(e) {
		t.Error("entry should still be fresh inside the window")
	}

	clock.advance(2 * time.Minute)
	e, ok = s.Get("companies")
	if !ok {
		t.Fatal("stale entries stay in the store until invalidated")
	}
	if s.Fresh(e) {
		t.Error("entry should be stale past the window")
	}
}

func TestStoreZeroWindowAlwaysStale(t *testing.T) {
	clock := newClock()
	s := NewStore(0, clock.now)
	s.Set("k", 1)
	e, _ := s.Get("k")
	if s.Fresh(e) {
		t.Error("window <= 0 means every entry is stale")
	}
}

func TestStoreInvalidate(t *testing.T) {
	s := NewStore(time.Minute, nil)
	s.Set("a", 1)
	s.Set("b", 2)

	s.Invalidate("a")
	if _, ok := s.Get("a"); ok {
		t.Error("invalidated key should be gone")
	}
	if _, ok := s.Get("b"); !ok {
		t.Error("other keys must survive a single-key invalidation")
	}

	// Unknown key is a no-op.
	s.Invalidate("missing")

	s.InvalidateAll()
	if _, ok := s.Get("b"); ok {
		t.Error("InvalidateAll should clear every key")
	}
}

func TestStoreLastWrite(t *testing.T) {
	clock := newClock()
	s := NewStore(time.Minute, clock.now)

	if _, ok := s.LastWriteTimestamp(); ok {
		t.Fatal("no write stamp before any MarkWrite")
	}

	s.MarkWrite()
	got, ok := s.LastWriteTimestamp()
	if !ok {
		t.Fatal("expected a stamp after MarkWrite")
	}
	if !got.Equal(clock.t) {
		t.Errorf("stamp = %v, want %v", got, clock.t)
	}

	// A later write advances the stamp.
	clock.advance(time.Minute)
	s.MarkWrite()
	got, _ = s.LastWriteTimestamp()
	if !got.Equal(clock.t) {
		t.Errorf("stamp not advanced: %v", got)
	}

	// The stamp is cleared by a wildcard invalidation.
	s.InvalidateAll()
	if _, ok := s.LastWriteTimestamp(); ok {
		t.Error("InvalidateAll should clear the last-write stamp")
	}
}

func TestStoreSetReplaces(t *testing.T) {
	clock := newClock()
	s := NewStore(time.Minute, clock.now)
	s.Set("k", "old")
	clock.advance(30 * time.Second)
	s.Set("k", "new")

	e, _ := s.Get("k")
	if e.Value != "new" {
		t.Errorf("Value = %v, want new", e.Value)
	}
	if !e.FetchedAt.Equal(clock.t) {
		t.Error("FetchedAt should be restamped on replace")
	}
}
