// Package decoder turns a statement file of unknown provenance into a
// rectangular table of classified cells. A structured spreadsheet read
// is attempted first; on failure an ordered list of delimited-text
// strategies is tried, each a pure attempt that either yields a usable
// grid or fails. The decoder is the first successful attempt.
package decoder

import (
	"path/filepath"

	"github.com/extrato-dev/extrato/internal/formats"
	"github.com/extrato-dev/extrato/internal/model"
)

// Decode reads the statement at path into a RawTable using the column
// layout declared by format.
func Decode(path string, format formats.Format) (model.RawTable, error) {
	grid, err := readWorkbook(path, format.HeaderRows())
	if err != nil {
		grid, err = readDelimited(path, format.HeaderRows())
	}
	if err != nil {
		return nil, model.DecodeError{File: filepath.Base(path)}
	}
	return buildTable(grid, format)
}

// buildTable assigns columns, classifies cells, and drops fully-empty
// physical rows.
func buildTable(grid [][]string, format formats.Format) (model.RawTable, error) {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	if len(grid) == 0 || width == 0 {
		return nil, model.EmptyInputError{}
	}

	cols, err := format.SelectColumns(width)
	if err != nil {
		return nil, err
	}

	var table model.RawTable
	for _, row := range grid {
		r := model.RawRow{
			Date:        cellAt(row, cols.Date),
			Document:    cellAt(row, cols.Document),
			Description: cellAt(row, cols.Description),
			Amount:      cellAt(row, cols.Amount),
		}
		if r.Date.IsEmpty() && r.Document.IsEmpty() && r.Description.IsEmpty() && r.Amount.IsEmpty() {
			continue
		}
		table = append(table, r)
	}
	if len(table) == 0 {
		return nil, model.EmptyInputError{}
	}
	return table, nil
}

func cellAt(row []string, idx int) model.Cell {
	if idx < 0 || idx >= len(row) {
		return model.Cell{Kind: model.CellEmpty}
	}
	return model.DetectCell(row[idx])
}
