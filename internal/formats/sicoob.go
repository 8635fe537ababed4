package formats

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// Sicoob parses Sicoob statement exports. Amounts carry a trailing
// letter flag: "- 125,69 D" is a debit, "2.794,76 C" a credit.
type Sicoob struct{}

// amountPattern matches the Sicoob grammar: optional minus, Brazilian
// thousands/decimal separators, a single D or C flag.
var amountPattern = regexp.MustCompile(`^-?\s*(\d{1,3}(\.\d{3})*,\d{2})\s*([DC])$`)

var spacesPattern = regexp.MustCompile(`\s+`)

// nonNumericPattern strips everything but digits, separators and sign
// for the generic fallback.
var nonNumericPattern = regexp.MustCompile(`[^\d.,-]`)

// Name returns the format name.
func (f *Sicoob) Name() string { return "sicoob" }

// HeaderRows returns the number of header rows in a Sicoob export.
func (f *Sicoob) HeaderRows() int { return 1 }

// SelectColumns maps the first four columns to Date, Document,
// Description, Amount. Three-column exports lack the document column.
func (f *Sicoob) SelectColumns(width int) (ColumnMap, error) {
	switch {
	case width >= 4:
		return ColumnMap{Date: 0, Document: 1, Description: 2, Amount: 3}, nil
	case width == 3:
		return ColumnMap{Date: 0, Document: -1, Description: 1, Amount: 2}, nil
	default:
		return ColumnMap{}, model.StructuralError{Columns: width}
	}
}

// ParseAmount resolves a Sicoob amount string. The D flag alone carries
// the debit meaning, so a matched debit always comes back positive.
// Credits come back ok=false; so does anything unparseable.
func (f *Sicoob) ParseAmount(cell model.Cell) (decimal.Decimal, bool) {
	if cell.IsEmpty() {
		return decimal.Decimal{}, false
	}
	s := strings.TrimSpace(spacesPattern.ReplaceAllString(cell.String(), " "))
	if s == "" {
		return decimal.Decimal{}, false
	}

	if m := amountPattern.FindStringSubmatch(s); m != nil {
		if m[3] == "C" {
			return decimal.Decimal{}, false
		}
		normalized := strings.ReplaceAll(m[1], ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
		n, err := decimal.NewFromString(normalized)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return n, true
	}

	return parseGenericAmount(s)
}

// parseGenericAmount is the loose fallback for amounts outside the
// Sicoob grammar: anything with a credit indicator is rejected, the rest
// is stripped down to its numeric core and accepted only when the
// original carried a minus sign or a D flag. Sign is kept as parsed;
// that looseness matches the exports this was written against.
func parseGenericAmount(s string) (decimal.Decimal, bool) {
	if strings.ContainsAny(s, "Cc") {
		return decimal.Decimal{}, false
	}

	cleaned := nonNumericPattern.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	n, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}

	if strings.Contains(s, "-") || strings.ContainsAny(s, "Dd") {
		return n, true
	}
	return decimal.Decimal{}, false
}
