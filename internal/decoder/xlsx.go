package decoder

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook reads the first sheet of a spreadsheet workbook, skipping
// the format's header rows. Returns the remaining rows as raw strings.
func readWorkbook(path string, headerRows int) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}

	if len(rows) <= headerRows {
		return nil, nil
	}
	return rows[headerRows:], nil
}
