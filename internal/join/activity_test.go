package join

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2026-01-02T15:04:05Z", true, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"2026-01-02 15:04:05", true, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"2026-01-02", true, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"01/15/2026", true, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"1/5/2026", true, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"  2026-01-02  ", true, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"next tuesday", false, time.Time{}},
	}
	for _, tc := range cases {
		got, ok := ParseTime(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseTime(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestComputeLastActivity(t *testing.T) {
	interactions := []Event{
		{EntityID: "c1", At: "2026-01-10"},
		{EntityID: "c1", At: "2026-02-01"},
		{EntityID: "c2", At: "garbage"},
		{EntityID: "", At: "2026-03-01"},
	}
	weekly := []Event{
		{EntityID: "c1", At: "2026-01-20"},
		{EntityID: "c3", At: "2026-01-05"},
	}

	got := ComputeLastActivity(interactions, weekly)

	if want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC); !got["c1"].Equal(want) {
		t.Errorf("c1 = %v, want %v", got["c1"], want)
	}
	if _, ok := got["c2"]; ok {
		t.Error("entity with only invalid timestamps should be absent")
	}
	if _, ok := got[""]; ok {
		t.Error("empty entity IDs should be skipped")
	}
	if want := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC); !got["c3"].Equal(want) {
		t.Errorf("c3 = %v, want %v", got["c3"], want)
	}
}

func TestComputeLastActivityEmpty(t *testing.T) {
	got := ComputeLastActivity(nil, []Event{})
	if len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}
