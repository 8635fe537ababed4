package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CellKind discriminates the closed set of value shapes a statement cell
// can take. Source files mix typed spreadsheet cells with free text, so
// the decoder classifies once and downstream stages switch on Kind.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is one untyped value read from a statement file.
// Text always holds the original trimmed form; Number and Date are only
// meaningful for their respective kinds.
type Cell struct {
	Kind   CellKind
	Text   string
	Number decimal.Decimal
	Date   time.Time
}

// dateLayouts are the day-first forms seen in bank exports.
var dateLayouts = []string{"02/01/2006", "02/01/06", "2006-01-02"}

// DetectCell classifies a raw string into a Cell. Spreadsheet libraries
// surface every cell as text, so classification happens here instead of
// being duck-typed later. The literal "nan" is an empty cell: it is how
// missing values round-trip through the exports this pipeline ingests.
func DetectCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return Cell{Kind: CellEmpty}
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return Cell{Kind: CellDate, Text: s, Date: d}
		}
	}

	if n, ok := detectNumber(s); ok {
		return Cell{Kind: CellNumber, Text: s, Number: n}
	}

	return Cell{Kind: CellText, Text: s}
}

// NumberCell builds a typed numeric cell directly, bypassing detection.
func NumberCell(n decimal.Decimal) Cell {
	return Cell{Kind: CellNumber, Text: n.String(), Number: n}
}

// detectNumber accepts plain signed decimals with either a dot or a
// single comma as decimal separator. Strings carrying both (Brazilian
// thousands grouping) stay text so the format-specific amount parser
// gets the original form.
func detectNumber(s string) (decimal.Decimal, bool) {
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") || strings.Count(s, ",") > 1 {
			return decimal.Decimal{}, false
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	n, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return n, true
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// String returns the original trimmed text, or "" for an empty cell.
func (c Cell) String() string { return c.Text }

// RawRow is one physical line of a statement: a date that is only present
// on a transaction's first row, an optional document reference, free
// description text, and the bank-formatted amount.
type RawRow struct {
	Date        Cell
	Document    Cell
	Description Cell
	Amount      Cell
}

// IsBlank reports whether the row carries neither date nor description.
func (r RawRow) IsBlank() bool {
	return r.Date.IsEmpty() && r.Description.IsEmpty()
}

// RawTable is the rectangular output of the decoder, in file order.
type RawTable []RawRow
