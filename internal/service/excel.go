package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WorkforceRow is one line of the exported directory.
type WorkforceRow struct {
	EmployeeID     string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Role           string
	DepartmentName string
	Position       string
	EmploymentType string
	Status         string
}

var workforceHeaders = []string{"Employee ID", "First Name", "Last Name", "Email", "Phone", "Role", "Department", "Position", "Employment Type", "Status"}

func exportPath(fileName string) (string, error) {
	targetPath := filepath.Join(baseDir, "exports")
	if err := os.MkdirAll(targetPath, os.ModePerm); err != nil {
		return "", err
	}
	return filepath.Join(targetPath, fileName), nil
}

// WorkforceTemplate writes an empty roster sheet with only the header row,
// used for bulk imports, and returns its path.
func WorkforceTemplate() (string, error) {
	path, err := exportPath("workforce-template.xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range workforceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}

// WorkforceToExcel writes the directory rows into a fresh workbook,
// replacing any earlier export at the same name, and returns its path.
func WorkforceToExcel(rows []WorkforceRow, fileName string) (string, error) {
	path, err := exportPath(fileName)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range workforceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, entry := range rows {
		values := []string{
			entry.EmployeeID,
			entry.FirstName,
			entry.LastName,
			entry.Email,
			entry.Phone,
			entry.Role,
			entry.DepartmentName,
			entry.Position,
			entry.EmploymentType,
			entry.Status,
		}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}
