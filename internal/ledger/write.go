package ledger

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/extrato-dev/extrato/internal/model"
)

const (
	dateNumFmt     = "dd/mm/yyyy"
	currencyNumFmt = `"R$" #,##0.00`
)

// WriteOptions tune the cosmetic side of an append. Neither option
// affects what gets written, only how it looks.
type WriteOptions struct {
	// CopyStyles copies font/border/fill/alignment from a reference
	// row onto each new row.
	CopyStyles bool
	// MaxColWidth caps the re-measured column widths.
	MaxColWidth float64
}

// DefaultWriteOptions matches the workbook's historical appearance.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{CopyStyles: true, MaxColWidth: 50}
}

// Append writes entries to the first fully-empty row of the Banco sheet
// and saves the workbook once. Nothing is flushed to disk until every
// entry has been placed, so a failed save leaves the file untouched.
// A locked workbook surfaces as a PermissionError so callers can tell
// the user to close it.
func Append(f *excelize.File, path string, entries []model.DebitEntry, opts WriteOptions) error {
	file := filepath.Base(path)
	if opts.MaxColWidth <= 0 {
		opts.MaxColWidth = 50
	}

	if err := ensureSheet(f); err != nil {
		return model.WriteError{File: file, Err: err}
	}

	insertRow := findInsertRow(f)
	if err := writeEntries(f, entries, insertRow, opts); err != nil {
		return model.WriteError{File: file, Err: err}
	}
	resizeColumns(f, opts.MaxColWidth)

	if err := f.Save(); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return model.PermissionError{File: file}
		}
		return model.WriteError{File: file, Err: err}
	}
	return nil
}

// ensureSheet creates the Banco sheet with its header row when the
// workbook does not have one yet.
func ensureSheet(f *excelize.File) error {
	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return err
	}
	if idx >= 0 {
		return nil
	}

	if _, err := f.NewSheet(SheetName); err != nil {
		return err
	}
	for i, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
	}
	return nil
}

// findInsertRow scans from row 2 for the first row with all seven
// columns empty. Row 1 is the header and never counts.
func findInsertRow(f *excelize.File) int {
	rows, err := f.GetRows(SheetName)
	if err != nil {
		return 2
	}
	for i := 1; i < len(rows); i++ {
		empty := true
		for c := 0; c < numColumns; c++ {
			if fieldAt(rows[i], c) != "" {
				empty = false
				break
			}
		}
		if empty {
			return i + 1
		}
	}
	if len(rows) < 2 {
		return 2
	}
	return len(rows) + 1
}

func writeEntries(f *excelize.File, entries []model.DebitEntry, insertRow int, opts WriteOptions) error {
	styles, err := columnStyles(f, insertRow, opts)
	if err != nil {
		return err
	}

	for i, e := range entries {
		row := insertRow + i
		values := [numColumns]any{
			dueDateValue(e.DueDate),
			e.Description,
			e.Amount.InexactFloat64(),
			e.Supplier,
			e.DocumentNumber,
			e.AccountCode,
			e.Note,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return err
			}
			if styles[c] != 0 {
				if err := f.SetCellStyle(SheetName, cell, cell, styles[c]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// columnStyles builds one style per column for the new rows: the
// reference row's look (header when inserting at the top, otherwise the
// row just above) merged with the date and currency number formats.
// Style copying is cosmetic; failures fall back to bare number formats.
func columnStyles(f *excelize.File, insertRow int, opts WriteOptions) ([numColumns]int, error) {
	var styles [numColumns]int

	refRow := 1
	if insertRow > 2 {
		refRow = insertRow - 1
	}

	for c := 0; c < numColumns; c++ {
		st := &excelize.Style{}
		if opts.CopyStyles {
			if ref := referenceStyle(f, c+1, refRow); ref != nil {
				st = ref
			}
		}

		switch c {
		case colDueDate:
			numFmt := dateNumFmt
			st.NumFmt = 0
			st.CustomNumFmt = &numFmt
		case colAmount:
			numFmt := currencyNumFmt
			st.NumFmt = 0
			st.CustomNumFmt = &numFmt
		default:
			if !opts.CopyStyles {
				continue
			}
		}

		id, err := f.NewStyle(st)
		if err != nil {
			return styles, err
		}
		styles[c] = id
	}
	return styles, nil
}

func referenceStyle(f *excelize.File, col, row int) *excelize.Style {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil
	}
	id, err := f.GetCellStyle(SheetName, cell)
	if err != nil {
		return nil
	}
	st, err := f.GetStyle(id)
	if err != nil {
		return nil
	}
	return st
}

// dueDateValue types the due date as a real date value when it parses,
// keeping the original text otherwise.
func dueDateValue(c model.Cell) any {
	if c.Kind == model.CellDate {
		return c.Date
	}
	if d, ok := parseDayFirst(c.String()); ok {
		return d
	}
	return c.String()
}

func parseDayFirst(s string) (time.Time, bool) {
	for _, layout := range dayFirstLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// resizeColumns re-measures each ledger column from its longest
// stringified cell, capped at maxWidth. Best effort only.
func resizeColumns(f *excelize.File, maxWidth float64) {
	rows, err := f.GetRows(SheetName)
	if err != nil {
		return
	}
	for c := 0; c < numColumns; c++ {
		longest := 0
		for _, row := range rows {
			if c < len(row) {
				if n := utf8.RuneCountInString(row[c]); n > longest {
					longest = n
				}
			}
		}
		width := float64(longest + 2)
		if width > maxWidth {
			width = maxWidth
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(SheetName, col, col, width)
	}
}
