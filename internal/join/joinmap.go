package join

// BuildJoinMap builds a lookup table for one aggregation pass. On key
// collision the first record wins and later duplicates are ignored, so a
// join over data with near-duplicate rows resolves the same way on every
// call. Records whose key is empty are skipped.
func BuildJoinMap[T, V any](records []T, keyFn func(T) string, valueFn func(T) V) map[string]V {
	m := make(map[string]V, len(records))
	for _, rec := range records {
		k := keyFn(rec)
		if k == "" {
			continue
		}
		if _, ok := m[k]; ok {
			continue
		}
		m[k] = valueFn(rec)
	}
	return m
}
