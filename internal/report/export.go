// Package report exports journaled records to xlsx for offline review.
package report

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"docinho/internal"
)

func ExportRowsToXLSX(rows []internal.RecordRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"data", "tipo", "resumo", "valor", "registrado_em"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Date)
		set(2, row.Kind)
		set(3, row.Summary)
		set(4, row.Amount)
		set(5, row.CreatedAt)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
