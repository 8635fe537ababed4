package ledger

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// startingWidths are the initial column widths of a fresh ledger sheet.
var startingWidths = []float64{15, 50, 15, 25, 15, 20, 30}

// CreateWorkbook writes a fresh ledger workbook: a styled Banco sheet
// with the seven headers and a Base de dados lookup sheet with its own
// header cells. Used when no template workbook is available.
func CreateWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming ledger sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("writing header %s: %w", h, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header %s: %w", h, err)
		}
	}

	for i, w := range startingWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, w); err != nil {
			return fmt.Errorf("setting column width: %w", err)
		}
	}

	if _, err := f.NewSheet(RefSheetName); err != nil {
		return fmt.Errorf("creating reference sheet: %w", err)
	}
	refCells := map[string]string{
		"A1": "Nome",
		"C1": "Conta Contábil",
		"E1": "Colaboradores, prestadores, funcionário E FORNECEDORES",
	}
	for cell, v := range refCells {
		if err := f.SetCellValue(RefSheetName, cell, v); err != nil {
			return fmt.Errorf("writing reference header: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// SeedWorkbook prepares a destination ledger: a byte copy of the
// template when one exists, a fresh basic workbook otherwise.
func SeedWorkbook(templatePath, dst string) error {
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err == nil {
			if err := os.WriteFile(dst, data, 0o644); err != nil {
				return fmt.Errorf("copying template: %w", err)
			}
			return nil
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading template: %w", err)
		}
	}
	return CreateWorkbook(dst)
}
