package model

import (
	"github.com/shopspring/decimal"
)

// LogicalTransaction is one consolidated statement record: a date-bearing
// row merged with the continuation rows that wrapped its narrative text.
// The amount is still in the bank's own format at this point.
type LogicalTransaction struct {
	Date        Cell
	Document    Cell
	Description string
	Amount      Cell
}

// DebitEntry is a LogicalTransaction whose amount parsed to a positive
// debit. Fields map one to one onto the ledger sheet's columns; Supplier
// and AccountCode are filled in later by hand, never by this pipeline.
type DebitEntry struct {
	DueDate        Cell
	Description    string
	Amount         decimal.Decimal
	Supplier       string
	DocumentNumber string
	AccountCode    string
	Note           string
}

// LedgerRow is one existing row of the "Banco" sheet as read back from
// the workbook. Cells come back stringified; the merger only needs them
// for identity comparison.
type LedgerRow struct {
	DueDate        string
	Description    string
	Amount         string
	Supplier       string
	DocumentNumber string
	AccountCode    string
	Note           string
}
