// Package sheets is the tabular transport boundary: a range-addressed
// read/write interface over the spreadsheet that is the system of record,
// plus the Google Sheets client implementing it.
package sheets

import (
	"context"
	"fmt"
	"strings"
)

// WriteMode selects between appending new rows and updating rows in place.
type WriteMode int

const (
	Append WriteMode = iota
	Update
)

// Range addresses a block of cells on one tab, A1-style. Cells may be
// open-ended ("A2:H") or pin a single row ("A7:H7").
type Range struct {
	Sheet string
	Cells string
}

// A1 renders the range in A1 notation.
func (r Range) A1() string {
	if r.Cells == "" {
		return r.Sheet
	}
	return fmt.Sprintf("%s!%s", r.Sheet, r.Cells)
}

// Row returns the same range pinned to a single sheet row.
func (r Range) Row(n int) Range {
	return Range{Sheet: r.Sheet, Cells: rowCells(r.Cells, n)}
}

func rowCells(cells string, n int) string {
	first, second := cells, ""
	if i := strings.Index(cells, ":"); i >= 0 {
		first, second = cells[:i], cells[i+1:]
	}
	col := func(s string) string {
		j := 0
		for j < len(s) && (s[j] < '0' || s[j] > '9') {
			j++
		}
		return s[:j]
	}
	if second == "" {
		return fmt.Sprintf("%s%d", col(first), n)
	}
	return fmt.Sprintf("%s%d:%s%d", col(first), n, col(second), n)
}

// Source is the minimal table transport the core consumes. Implementations
// do no caching and no parsing; errors are transport-level and are not
// retried here.
type Source interface {
	// Read returns the rows in the range, in sheet order. Cells are
	// stringified; missing trailing cells are absent from the row slice.
	Read(ctx context.Context, ref Range) ([][]string, error)

	// Write appends rows after the range (Append) or overwrites the range
	// (Update).
	Write(ctx context.Context, ref Range, rows [][]string, mode WriteMode) error

	// DeleteRows removes sheet rows start..end inclusive (1-based).
	DeleteRows(ctx context.Context, sheet string, start, end int) error
}
