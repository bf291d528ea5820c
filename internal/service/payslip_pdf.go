package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf/v2"
)

// PayslipDocument carries everything the rendered payslip shows.
type PayslipDocument struct {
	ID          int
	CompanyName string
	EmployeeID  string
	FullName    string
	Department  string
	PeriodStart string
	PeriodEnd   string
	HoursWorked float64
	GrossPay    float64
	Deductions  float64
	NetPay      float64
}

// GeneratePayslipPDF renders one payslip to a pdf file and returns its path.
func GeneratePayslipPDF(doc PayslipDocument) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, doc.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, "Payslip", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	rows := [][2]string{
		{"Employee ID", doc.EmployeeID},
		{"Name", doc.FullName},
		{"Department", doc.Department},
		{"Period", fmt.Sprintf("%s - %s", doc.PeriodStart, doc.PeriodEnd)},
		{"Hours worked", fmt.Sprintf("%.2f", doc.HoursWorked)},
		{"Gross pay", fmt.Sprintf("%.2f", doc.GrossPay)},
		{"Deductions", fmt.Sprintf("%.2f", doc.Deductions)},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(50, 8, "Net pay", "1", 0, "L", false, 0, "")
	pdf.CellFormat(100, 8, fmt.Sprintf("%.2f", doc.NetPay), "1", 1, "L", false, 0, "")

	targetPath := filepath.Join(baseDir, "payslips")
	if err := os.MkdirAll(targetPath, os.ModePerm); err != nil {
		return "", err
	}

	path := filepath.Join(targetPath, fmt.Sprintf("payslip-%d.pdf", doc.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}

	return path, nil
}
