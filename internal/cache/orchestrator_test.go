package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

type person struct {
	Name    string
	Company string
	Date    string
	Row     int
}

func parsePerson(row []string, idx int) person {
	p := person{Row: idx + 1}
	if len(row) > 0 {
		p.Name = row[0]
	}
	if len(row) > 1 {
		p.Company = row[1]
	}
	if len(row) > 2 {
		p.Date = row[2]
	}
	return p
}

func personDateDesc(a, b person) bool { return a.Date > b.Date }

func peopleTab() [][]string {
	return [][]string{
		{"Name", "Company", "Date"},
		{"Alice", "ACME Inc", "2026-01-01"},
		{"Bob", "", "2026-01-02"},
	}
}

var peopleRange = sheets.Range{Sheet: "People", Cells: "A2:C"}

func TestFetchAndCacheMissThenHit(t *testing.T) {
	clock := newClock()
	store := NewStore(5*time.Minute, clock.now)
	src := sheets.NewFake()
	src.SetTab("People", peopleTab())

	got, err := FetchAndCache(context.Background(), store, "people", src, peopleRange, parsePerson, personDateDesc)
	if err != nil {
		t.Fatalf("FetchAndCache: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Sorted by date descending; Bob's later date wins despite sheet order.
	if got[0].Name != "Bob" || got[1].Name != "Alice" {
		t.Errorf("order = %s, %s; want Bob, Alice", got[0].Name, got[1].Name)
	}
	// Row survives the sort: Alice was the first data row under the header.
	if got[1].Row != 2 {
		t.Errorf("Alice row = %d, want 2", got[1].Row)
	}
	// Short rows default missing fields rather than erroring.
	if got[0].Company != "" {
		t.Errorf("Bob company = %q, want empty", got[0].Company)
	}
	if src.Reads("People") != 1 {
		t.Fatalf("reads = %d, want 1", src.Reads("People"))
	}

	// Fresh hit: no further source I/O.
	clock.advance(time.Minute)
	if _, err := FetchAndCache(context.Background(), store, "people", src, peopleRange, parsePerson, personDateDesc); err != nil {
		t.Fatal(err)
	}
	if src.Reads("People") != 1 {
		t.Errorf("fresh hit refetched: reads = %d", src.Reads("People"))
	}

	// Past the window the next read goes back to the source.
	clock.advance(10 * time.Minute)
	if _, err := FetchAndCache(context.Background(), store, "people", src, peopleRange, parsePerson, personDateDesc); err != nil {
		t.Fatal(err)
	}
	if src.Reads("People") != 2 {
		t.Errorf("stale entry not refetched: reads = %d", src.Reads("People"))
	}
}

func TestFetchAndCacheTransportErrorNotCached(t *testing.T) {
	store := NewStore(5*time.Minute, nil)
	src := sheets.NewFake()
	src.SetTab("People", peopleTab())
	src.ReadErr = errors.New("rate limited")

	got, err := FetchAndCache(context.Background(), store, "people", src, peopleRange, parsePerson, nil)
	if err == nil {
		t.Fatal("expected error from failing source")
	}
	if got != nil {
		t.Errorf("failed fetch returned records: %v", got)
	}
	if _, ok := store.Get("people"); ok {
		t.Error("transport failure must not be cached")
	}

	// Recovery: the very next call retries and caches.
	src.ReadErr = nil
	got, err = FetchAndCache(context.Background(), store, "people", src, peopleRange, parsePerson, nil)
	if err != nil {
		t.Fatalf("retry after recovery: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records after recovery, want 2", len(got))
	}
	if _, ok := store.Get("people"); !ok {
		t.Error("successful fetch should be cached")
	}
}

func TestFetchAndCacheEmptyTab(t *testing.T) {
	store := NewStore(time.Minute, nil)
	src := sheets.NewFake()
	src.SetTab("People", [][]string{{"Name", "Company", "Date"}})

	got, err := FetchAndCache(context.Background(), store, "people", src, peopleRange, parsePerson, personDateDesc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records from empty tab", len(got))
	}
	// The empty result is a valid dataset and is cached.
	if _, ok := store.Get("people"); !ok {
		t.Error("empty dataset should still be cached")
	}
}

func TestFetchAndCacheStableSortKeepsSheetOrder(t *testing.T) {
	store := NewStore(time.Minute, nil)
	src := sheets.NewFake()
	src.SetTab("People", [][]string{
		{"Name", "Company", "Date"},
		{"Alice", "A", "2026-01-01"},
		{"Bob", "B", "2026-01-01"},
		{"Carol", "C", "2026-01-01"},
	})

	got, err := FetchAndCache(context.Background(), store, "people", src, peopleRange, parsePerson, personDateDesc)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"Alice", "Bob", "Carol"} {
		if got[i].Name != want {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, got[i].Name, want)
		}
	}
}

func TestFetchAndCacheTypeMismatchRefetches(t *testing.T) {
	store := NewStore(time.Minute, nil)
	src := sheets.NewFake()
	src.SetTab("People", peopleTab())

	// Another dataset was stored under the same key with a different type.
	store.Set("people", []int{1, 2, 3})

	got, err := FetchAndCache(context.Background(), store, "people", src, peopleRange, parsePerson, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if src.Reads("People") != 1 {
		t.Errorf("type mismatch should force a refetch, reads = %d", src.Reads("People"))
	}
}
