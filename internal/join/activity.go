package join

import (
	"strings"
	"time"
)

// timeLayouts are the cell formats accepted for timestamps, tried in order.
// The sheet is hand-edited; dates show up in several shapes.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
}

// ParseTime parses a raw timestamp cell. The second return is false when
// the cell is empty or matches no known layout.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Event is one timestamped occurrence attributed to an entity, drawn from
// any of the activity streams (interactions, weekly entries, opportunity
// updates).
type Event struct {
	EntityID string
	At       string
}

// ComputeLastActivity folds all event streams into the latest valid
// timestamp per entity. Unparseable timestamps are skipped, not errors.
// Entities with no valid events are absent from the result; callers fall
// back to the entity's creation time. Recomputed fully on every call.
func ComputeLastActivity(streams ...[]Event) map[string]time.Time {
	out := make(map[string]time.Time)
	for _, events := range streams {
		for _, ev := range events {
			if ev.EntityID == "" {
				continue
			}
			t, ok := ParseTime(ev.At)
			if !ok {
				continue
			}
			if cur, seen := out[ev.EntityID]; !seen || t.After(cur) {
				out[ev.EntityID] = t
			}
		}
	}
	return out
}
