package cache

import (
	"context"
	"fmt"
	"sort"

	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// RowParser turns one raw row into a record. idx is the 1-based position of
// the row within the source range. Parsers must tolerate short or malformed
// rows and default missing fields; the sheet is free-form.
type RowParser[T any] func(row []string, idx int) T

// FetchAndCache is the shared read pipeline. A fresh cache hit returns the
// cached records with no source I/O. Otherwise the range is read, parsed
// row by row, optionally sorted (stable; ties keep sheet order), stored
// under key, and returned.
//
// A transport failure is never cached: the error is returned alongside a
// nil slice so the caller can log and degrade, and the next call retries.
// Concurrent misses on the same key each fetch independently; the last
// writer wins.
func FetchAndCache[T any](
	ctx context.Context,
	store *Store,
	key string,
	src sheets.Source,
	ref sheets.Range,
	parse RowParser[T],
	less func(a, b T) bool,
) ([]T, error) {
	if v, ok := store.getFresh(key); ok {
		if recs, ok := v.([]T); ok {
			return recs, nil
		}
		// Key collision across types; treat as a miss and refetch.
		store.Invalidate(key)
	}

	rows, err := src.Read(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", key, err)
	}

	recs := make([]T, 0, len(rows))
	for i, row := range rows {
		recs = append(recs, parse(row, i+1))
	}

	if less != nil {
		sort.SliceStable(recs, func(i, j int) bool { return less(recs[i], recs[j]) })
	}

	store.Set(key, recs)
	return recs, nil
}
