package formats

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// Santander parses Santander statement exports. Amounts are plain signed
// numbers; a debit is any strictly negative value.
type Santander struct{}

// Name returns the format name.
func (f *Santander) Name() string { return "santander" }

// HeaderRows returns the number of header rows in a Santander export.
func (f *Santander) HeaderRows() int { return 2 }

// SelectColumns maps the Santander layout: date, narrative, a skipped
// document-count column, amount. There is no document reference.
func (f *Santander) SelectColumns(width int) (ColumnMap, error) {
	if width < 4 {
		return ColumnMap{}, model.StructuralError{Columns: width}
	}
	return ColumnMap{Date: 0, Document: -1, Description: 1, Amount: 3}, nil
}

// ParseAmount accepts strictly negative values as debits and stores the
// magnitude. Credits (positive values) and unparseable cells are not
// debits.
func (f *Santander) ParseAmount(cell model.Cell) (decimal.Decimal, bool) {
	var n decimal.Decimal
	switch cell.Kind {
	case model.CellNumber:
		n = cell.Number
	case model.CellText:
		s := strings.Replace(strings.TrimSpace(cell.Text), ",", ".", 1)
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, false
		}
		n = parsed
	default:
		return decimal.Decimal{}, false
	}

	if !n.IsNegative() {
		return decimal.Decimal{}, false
	}
	return n.Abs(), true
}
