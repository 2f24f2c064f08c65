// Package readers holds one reader per entity tab. Each reader owns its
// dataset's cache key, range, field-index map, parser, and sort order, and
// serves every query from the shared fetch-and-cache pipeline. Nothing in
// this package talks to the sheet outside the orchestrator.
//
// Parsers are tolerant: a short or malformed row parses to a record with
// empty/false fields rather than failing the batch. Every record carries
// the 1-based sheet row it came from; that row index is only valid until
// the next write to the tab.
package readers

import "strings"

// col returns the cell at index i, or empty when the row is short.
func col(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// colBool reads a checkbox cell. Sheets renders checked boxes as TRUE.
func colBool(row []string, i int) bool {
	switch strings.ToLower(col(row, i)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// boolCell renders a bool the way the sheet stores it.
func boolCell(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// matches is the substring test used by every reader's search method.
func matches(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// paginate slices records for a 1-based page of the given size.
func paginate[T any](recs []T, page, size int) []T {
	if page < 1 || size < 1 {
		return recs
	}
	start := (page - 1) * size
	if start >= len(recs) {
		return nil
	}
	end := start + size
	if end > len(recs) {
		end = len(recs)
	}
	return recs[start:end]
}
