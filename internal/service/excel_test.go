package service

import (
	"os"
	"testing"

	"github.com/xuri/excelize/v2"
)

func chTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func sheetRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

// Re-exporting the same roster under the same name must not grow the sheet.
func TestWorkforceToExcelReplacesEarlierExport(t *testing.T) {
	chTempDir(t)

	rows := []WorkforceRow{
		{EmployeeID: "E-001", FirstName: "Ana", LastName: "Cruz", Role: "EMPLOYEE"},
		{EmployeeID: "E-002", FirstName: "Ben", LastName: "Reyes", Role: "MANAGER"},
	}

	if _, err := WorkforceToExcel(rows, "workforce.xlsx"); err != nil {
		t.Fatal(err)
	}
	path, err := WorkforceToExcel(rows, "workforce.xlsx")
	if err != nil {
		t.Fatal(err)
	}

	got := sheetRows(t, path)
	if len(got) != len(rows)+1 {
		t.Fatalf("rows after repeated export = %d, want %d", len(got), len(rows)+1)
	}
	if got[1][0] != "E-001" || got[2][0] != "E-002" {
		t.Fatalf("unexpected roster order: %v", got)
	}
}

func TestWorkforceTemplateHeaderOnly(t *testing.T) {
	chTempDir(t)

	path, err := WorkforceTemplate()
	if err != nil {
		t.Fatal(err)
	}

	got := sheetRows(t, path)
	if len(got) != 1 {
		t.Fatalf("template rows = %d, want the header only", len(got))
	}
	if got[0][0] != "Employee ID" {
		t.Fatalf("unexpected header: %v", got[0])
	}
}
