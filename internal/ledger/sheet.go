// Package ledger reads, deduplicates against, and appends to the "Banco"
// sheet of the ledger workbook. Every other sheet in the workbook is
// reference data owned by someone else and is never touched.
package ledger

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/extrato-dev/extrato/internal/model"
)

// SheetName is the ledger sheet. RefSheetName is the lookup sheet kept
// alongside it; this package never writes to it.
const (
	SheetName    = "Banco"
	RefSheetName = "Base de dados"
)

// Headers is the fixed column order of the ledger sheet.
var Headers = []string{
	"Data Vencimento",
	"Descrição",
	"Valor",
	"Fornecedor",
	"Numero Docto",
	"Conta Contábil",
	"Observação (opcional)",
}

const numColumns = 7

const (
	colDueDate = 0
	colDesc    = 1
	colAmount  = 2
	colSupp    = 3
	colDocNum  = 4
	colAcct    = 5
	colNote    = 6
)

// ReadBanco loads the existing ledger rows from an open workbook. A
// missing sheet or unreadable content counts as an empty ledger; the
// merge still works, it just has nothing to deduplicate against.
func ReadBanco(f *excelize.File) []model.LedgerRow {
	rows, err := f.GetRows(SheetName)
	if err != nil || len(rows) <= 1 {
		return nil
	}

	var out []model.LedgerRow
	for _, rec := range rows[1:] {
		row := model.LedgerRow{
			DueDate:        fieldAt(rec, colDueDate),
			Description:    fieldAt(rec, colDesc),
			Amount:         fieldAt(rec, colAmount),
			Supplier:       fieldAt(rec, colSupp),
			DocumentNumber: fieldAt(rec, colDocNum),
			AccountCode:    fieldAt(rec, colAcct),
			Note:           fieldAt(rec, colNote),
		}
		if row.DueDate == "" && row.Description == "" && row.Amount == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

func fieldAt(rec []string, idx int) string {
	if idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}
