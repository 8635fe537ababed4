// Package refdata provides read-only access to the "Base de dados"
// lookup sheet kept next to the ledger: supplier names and their account
// codes, maintained by hand in the workbook. The pipeline never writes
// here.
package refdata

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/extrato-dev/extrato/internal/ledger"
)

// Entry is one lookup row: a supplier name and its account code.
type Entry struct {
	Name        string
	AccountCode string
}

// Service provides in-memory lookup over the reference sheet.
type Service struct {
	entries []Entry
	byName  map[string]Entry
}

// NewService creates a Service from a slice of entries.
func NewService(entries []Entry) *Service {
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[normalizeName(e.Name)] = e
	}
	return &Service{entries: entries, byName: byName}
}

// Load reads the reference sheet from a ledger workbook. Names live in
// column A, account codes in column C; the first row is a header.
func Load(ledgerPath string) (*Service, error) {
	f, err := excelize.OpenFile(ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ledger.RefSheetName)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet: %w", ledger.RefSheetName, err)
	}

	var entries []Entry
	for i, row := range rows {
		if i == 0 {
			continue
		}
		name := cellAt(row, 0)
		if name == "" {
			continue
		}
		entries = append(entries, Entry{
			Name:        name,
			AccountCode: cellAt(row, 2),
		})
	}
	return NewService(entries), nil
}

// All returns all entries in sheet order.
func (s *Service) All() []Entry {
	return s.entries
}

// Lookup returns the entry for a supplier name, matched
// case-insensitively on trimmed text.
func (s *Service) Lookup(name string) (Entry, bool) {
	e, ok := s.byName[normalizeName(name)]
	return e, ok
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
