package ledger

import (
	"github.com/extrato-dev/extrato/internal/model"
)

// Merge returns the subset of entries whose identity key is not already
// present in the existing ledger rows, preserving input order, plus the
// number of duplicates dropped. Entries without a comparable key cannot
// be deduplicated and pass through as new.
func Merge(entries []model.DebitEntry, existing []model.LedgerRow) ([]model.DebitEntry, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		if key, ok := rowKey(row); ok {
			seen[key] = struct{}{}
		}
	}

	var fresh []model.DebitEntry
	duplicates := 0
	for _, e := range entries {
		if key, ok := entryKey(e); ok {
			if _, dup := seen[key]; dup {
				duplicates++
				continue
			}
		}
		fresh = append(fresh, e)
	}
	return fresh, duplicates
}
