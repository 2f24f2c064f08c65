package sheets

import (
	"context"
	"strconv"
	"sync"
)

// Fake is an in-memory Source for tests. Tabs hold full sheet contents
// starting at row 1 (header included); Read honors the range's starting
// row. ReadCalls counts reads per tab so tests can assert cache behavior.
type Fake struct {
	mu        sync.Mutex
	Tabs      map[string][][]string
	ReadCalls map[string]int

	ReadErr   error
	WriteErr  error
	DeleteErr error
}

// NewFake returns an empty fake source.
func NewFake() *Fake {
	return &Fake{
		Tabs:      make(map[string][][]string),
		ReadCalls: make(map[string]int),
	}
}

// SetTab replaces a tab's contents. Rows are full sheet rows from row 1.
func (f *Fake) SetTab(sheet string, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Tabs[sheet] = rows
}

// Reads returns the number of Read calls seen for a tab.
func (f *Fake) Reads(sheet string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ReadCalls[sheet]
}

func (f *Fake) Read(ctx context.Context, ref Range) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ReadCalls[ref.Sheet]++
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	rows := f.Tabs[ref.Sheet]
	start := startRow(ref.Cells)
	if start > len(rows) {
		return nil, nil
	}
	out := make([][]string, 0, len(rows)-start+1)
	for _, row := range rows[start-1:] {
		cp := make([]string, len(row))
		copy(cp, row)
		out = append(out, cp)
	}
	return out, nil
}

func (f *Fake) Write(ctx context.Context, ref Range, rows [][]string, mode WriteMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WriteErr != nil {
		return f.WriteErr
	}
	tab := f.Tabs[ref.Sheet]
	switch mode {
	case Append:
		tab = append(tab, rows...)
	case Update:
		start := startRow(ref.Cells)
		for i, row := range rows {
			idx := start - 1 + i
			for idx >= len(tab) {
				tab = append(tab, nil)
			}
			tab[idx] = row
		}
	}
	f.Tabs[ref.Sheet] = tab
	return nil
}

func (f *Fake) DeleteRows(ctx context.Context, sheet string, start, end int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	tab := f.Tabs[sheet]
	if start < 1 || start > len(tab) {
		return nil
	}
	if end > len(tab) {
		end = len(tab)
	}
	f.Tabs[sheet] = append(tab[:start-1], tab[end:]...)
	return nil
}

// startRow extracts the first row number from an A1 cell spec ("A2:H" -> 2).
// Specs without a row number address the whole tab.
func startRow(cells string) int {
	i := 0
	for i < len(cells) && (cells[i] < '0' || cells[i] > '9') {
		if cells[i] == ':' {
			return 1
		}
		i++
	}
	j := i
	for j < len(cells) && cells[j] >= '0' && cells[j] <= '9' {
		j++
	}
	if i == j {
		return 1
	}
	n, err := strconv.Atoi(cells[i:j])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
