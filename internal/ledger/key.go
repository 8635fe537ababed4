package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// keySeparator joins the three identity fields. None of them can contain
// a pipe after normalization, so the key is unambiguous.
const keySeparator = "|"

// dateKeyLayout is the normalized date form used inside identity keys.
const dateKeyLayout = "02/01/2006"

// dayFirstLayouts are the forms a due date can show up in, on either
// side of the comparison. Day-first interpretation throughout.
var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"02-01-2006",
	"2006-01-02",
}

// identityKey derives the deduplication key from already-normalized
// parts.
func identityKey(date, desc, amount string) string {
	return date + keySeparator + strings.ToLower(strings.TrimSpace(desc)) + keySeparator + amount
}

// normalizeDate reformats a date string to DD/MM/YYYY. Unparseable input
// keeps its original trimmed form so the comparison degrades gracefully
// instead of failing.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dayFirstLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(dateKeyLayout)
		}
	}
	return s
}

// normalizeAmount reduces an amount string to a fixed two-decimal form.
// Ledger cells can come back with currency symbols and Brazilian
// separators; new entries arrive as plain decimals. Both must map to the
// same key text. Unparseable input keeps its original trimmed form.
func normalizeAmount(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "R$", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	// The rightmost separator is the decimal one: number-formatted
	// cells come back as "2,460.73", hand-typed ones as "2.460,73".
	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case lastComma >= 0 && strings.Count(cleaned, ",") == 1:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case lastComma >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}
	n, err := decimal.NewFromString(cleaned)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return n.StringFixed(2)
}

// entryKey builds the identity key for a candidate entry. ok=false means
// the entry lacks a comparable field and cannot be deduplicated.
func entryKey(e model.DebitEntry) (string, bool) {
	if e.DueDate.IsEmpty() || strings.TrimSpace(e.Description) == "" {
		return "", false
	}

	var date string
	if e.DueDate.Kind == model.CellDate {
		date = e.DueDate.Date.Format(dateKeyLayout)
	} else {
		date = normalizeDate(e.DueDate.String())
	}
	return identityKey(date, e.Description, e.Amount.StringFixed(2)), true
}

// rowKey builds the identity key for an existing ledger row. ok=false
// means the row lacks a comparable field and is excluded from the
// comparison set.
func rowKey(r model.LedgerRow) (string, bool) {
	if r.DueDate == "" || r.Description == "" || r.Amount == "" {
		return "", false
	}
	return identityKey(normalizeDate(r.DueDate), r.Description, normalizeAmount(r.Amount)), true
}
