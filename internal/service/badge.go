package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	qrcode "github.com/skip2/go-qrcode"
)

// BadgeEmployee is what ends up on a printed badge.
type BadgeEmployee struct {
	EmployeeID string
	FullName   string
	Department string
}

// GenerateBadge writes a QR badge image for one employee and returns its
// path.
func GenerateBadge(employeeID string) (string, error) {
	targetPath := filepath.Join(baseDir, "badges")
	if err := os.MkdirAll(targetPath, os.ModePerm); err != nil {
		return "", err
	}

	path := filepath.Join(targetPath, employeeID+".png")
	if err := qrcode.WriteFile(employeeID, qrcode.Medium, 256, path); err != nil {
		return "", err
	}

	return path, nil
}

// GenerateBadgeSheet renders all employee badges into a single printable
// pdf and returns its path.
func GenerateBadgeSheet(employees []BadgeEmployee) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 10)

	const (
		badgeSize = 40.0
		perRow    = 4
		marginX   = 15.0
		marginY   = 15.0
		cellW     = 45.0
		cellH     = 60.0
	)

	for i, employee := range employees {
		if i%(perRow*4) == 0 {
			pdf.AddPage()
		}

		imagePath, err := GenerateBadge(employee.EmployeeID)
		if err != nil {
			return "", err
		}

		slot := i % (perRow * 4)
		x := marginX + float64(slot%perRow)*cellW
		y := marginY + float64(slot/perRow)*cellH

		pdf.ImageOptions(imagePath, x, y, badgeSize, badgeSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetXY(x, y+badgeSize+2)
		pdf.CellFormat(badgeSize, 4, employee.FullName, "", 2, "C", false, 0, "")
		pdf.CellFormat(badgeSize, 4, employee.Department, "", 0, "C", false, 0, "")
	}

	targetPath := filepath.Join(baseDir, "badges")
	if err := os.MkdirAll(targetPath, os.ModePerm); err != nil {
		return "", err
	}

	path := filepath.Join(targetPath, fmt.Sprintf("badge-sheet-%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}

	return path, nil
}
