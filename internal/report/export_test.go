package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"docinho/internal"
)

func TestExportRowsToXLSX(t *testing.T) {
	rows := []internal.RecordRow{
		{ID: 1, Kind: "venda", Date: "14/03/2026", Amount: 8, Summary: "Pudim De Leite x1", CreatedAt: "2026-03-14 10:30:00"},
		{ID: 2, Kind: "pessoal", Date: "15/03/2026", Amount: 25, Summary: "Uber para o shopping", CreatedAt: "2026-03-15 09:00:00"},
	}

	out := filepath.Join(t.TempDir(), "sub", "report.xlsx")
	if err := ExportRowsToXLSX(rows, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if header != "data" {
		t.Errorf("A1 = %q", header)
	}
	summary, err := f.GetCellValue(sheet, "C3")
	if err != nil {
		t.Fatal(err)
	}
	if summary != "Uber para o shopping" {
		t.Errorf("C3 = %q", summary)
	}
}
